package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/qr-verification-service/internal/codes"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/qrimage"
)

// ErrCodeAllocationExhausted is returned when no unused code was found
// within the attempt bound. With 2^128 possible codes this is practically
// unreachable; the bound only guards against an unbounded retry loop.
var ErrCodeAllocationExhausted = errors.New("failed to generate unique code")

// maxAllocationAttempts bounds both the pre-insert probe loop and the
// retry-on-conflict loop around the insert itself.
const maxAllocationAttempts = 10

// CodeExistenceChecker probes whether a code is already taken.
type CodeExistenceChecker interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// CodeRegistry produces unique codes and their derived verification
// artifacts.
type CodeRegistry struct {
	reader  CodeExistenceChecker
	baseURL string
	imgOpts qrimage.Options
}

// NewCodeRegistry creates a registry issuing URLs under baseURL.
func NewCodeRegistry(reader CodeExistenceChecker, baseURL string) *CodeRegistry {
	return &CodeRegistry{
		reader:  reader,
		baseURL: baseURL,
		imgOpts: qrimage.DefaultOptions(),
	}
}

// Allocate returns a fresh code that did not exist at probe time. The
// probe is best-effort; the store's unique constraint remains the
// authoritative guard and insert conflicts are retried by the caller.
func (r *CodeRegistry) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		code, err := codes.Generate()
		if err != nil {
			logger.Log.Errorw("failed to generate code", "err", err)
			return "", err
		}

		exists, err := r.reader.ExistsByCode(ctx, code)
		if err != nil {
			logger.Log.Errorw("failed to probe code existence", "err", err)
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeAllocationExhausted
}

// VerificationURL builds the public URL for a code.
func (r *CodeRegistry) VerificationURL(code string) string {
	return codes.VerificationURL(r.baseURL, code)
}

// RenderArtifact renders the QR image for a verification URL as a
// data URL.
func (r *CodeRegistry) RenderArtifact(url string) (string, error) {
	return qrimage.Render(url, r.imgOpts)
}
