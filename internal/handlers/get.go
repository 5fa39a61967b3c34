package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// QRCodeGetter defines the interface that the service must implement.
type QRCodeGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*services.QRCodeDetails, error)
}

// GetQRCodeResponseData is the payload of a get-by-id request
// swagger:model GetQRCodeResponseData
type GetQRCodeResponseData struct {
	QRCode *services.QRCodeDetails `json:"qrcode"`
}

// NewGetQRCodeHandler returns an HTTP handler for fetching one code.
// @Summary Get a QR code
// @Description Returns a code with its creator and scan history.
// @Tags qrcode
// @Produce json
// @Param id path string true "QR code ID"
// @Success 200 {object} models.APIResponse "QR code"
// @Failure 404 {object} models.APIResponse "QR code not found"
// @Router /api/qrcode/{id} [get]
// @Security BearerAuth
func NewGetQRCodeHandler(svc QRCodeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "QR code not found")
			return
		}

		details, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQRCodeNotFound):
				writeError(w, http.StatusNotFound, "QR code not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data:    GetQRCodeResponseData{QRCode: details},
		})
	}
}
