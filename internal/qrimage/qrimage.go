package qrimage

import (
	"encoding/base64"
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// Options control the rendered artifact. The zero value is not usable;
// call DefaultOptions for the settings every issued code uses.
type Options struct {
	Level      qrcode.RecoveryLevel
	Size       int
	Foreground color.Color
	Background color.Color
}

// DefaultOptions returns medium error correction at 512 px, black on white.
func DefaultOptions() Options {
	return Options{
		Level:      qrcode.Medium,
		Size:       512,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Render encodes the URL into a PNG QR image and returns it as a
// data URL suitable for direct embedding. Deterministic for identical
// inputs.
func Render(url string, opts Options) (string, error) {
	qr, err := qrcode.New(url, opts.Level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	qr.ForegroundColor = opts.Foreground
	qr.BackgroundColor = opts.Background

	png, err := qr.PNG(opts.Size)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
