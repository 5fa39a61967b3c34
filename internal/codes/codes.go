package codes

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenBytes is the entropy of a generated code. 16 bytes encode to the
// 32 lowercase hex characters embedded in every verification URL.
const TokenBytes = 16

// Generate returns a new random code from a cryptographically strong source.
func Generate() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// VerificationURL builds the public URL a rendered QR code points at.
func VerificationURL(baseURL, code string) string {
	return fmt.Sprintf("%s/verify/%s", strings.TrimRight(baseURL, "/"), code)
}
