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

// QRCodeDeleter defines the interface that the service must implement.
type QRCodeDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDeleteQRCodeHandler returns an HTTP handler for removing a code.
// @Summary Delete a QR code
// @Description Removes a code and all of its recorded scans.
// @Tags qrcode
// @Produce json
// @Param id path string true "QR code ID"
// @Success 200 {object} models.APIResponse "QR code deleted"
// @Failure 404 {object} models.APIResponse "QR code not found"
// @Router /api/qrcode/{id} [delete]
// @Security BearerAuth
func NewDeleteQRCodeHandler(svc QRCodeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "QR code not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
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
			Message: "QR code deleted successfully",
		})
	}
}
