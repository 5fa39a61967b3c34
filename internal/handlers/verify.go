package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// Verifier defines the interface that the service must implement.
type Verifier interface {
	Verify(ctx context.Context, code, ipAddress, userAgent string) (*services.VerificationResult, error)
}

// VerifyResponseData is the payload of a successful scan
// swagger:model VerifyResponseData
type VerifyResponseData struct {
	QRCode *services.VerificationResult `json:"qrcode"`
}

// NewVerifyHandler returns the public HTTP handler for scanning a code.
// @Summary Verify a QR code
// @Description Resolves a scanned code, records the scan and returns the payload. No authentication.
// @Tags verify
// @Produce json
// @Param code path string true "Scanned code value"
// @Success 200 {object} models.APIResponse "QR code payload"
// @Failure 400 {object} models.APIResponse "QR code is inactive or has expired"
// @Failure 404 {object} models.APIResponse "QR code not found"
// @Router /api/qrcode/verify/{code} [get]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		result, err := svc.Verify(r.Context(), code, clientIP(r), r.UserAgent())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQRCodeNotFound):
				writeError(w, http.StatusNotFound, "QR code not found")
			case errors.Is(err, services.ErrQRCodeInactive):
				writeError(w, http.StatusBadRequest, "QR code is inactive")
			case errors.Is(err, services.ErrQRCodeExpired):
				writeError(w, http.StatusBadRequest, "QR code has expired")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "QR code verified successfully",
			Data:    VerifyResponseData{QRCode: result},
		})
	}
}

// clientIP extracts the originating address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
