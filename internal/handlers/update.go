package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// QRCodeUpdater defines the interface that the service must implement.
type QRCodeUpdater interface {
	Update(ctx context.Context, id uuid.UUID, input services.QRCodeInput) (*services.QRCodeView, error)
}

// UpdateQRCodeRequest represents the JSON body for editing a code
// swagger:model UpdateQRCodeRequest
type UpdateQRCodeRequest struct {
	// Title
	// required: true
	// default: Launch poster
	Title string `json:"title"`

	// Description
	// default: Poster for the spring launch
	Description string `json:"description"`

	// Payload encoded into the QR code
	// required: true
	Data models.Payload `json:"data"`

	// Expiry timestamp, RFC3339. Empty clears the expiry.
	ExpiresAt string `json:"expires_at,omitempty"`

	// Activation state. Omitted keeps the stored value.
	IsActive *bool `json:"is_active,omitempty"`
}

// NewUpdateQRCodeHandler returns an HTTP handler for editing a code.
// @Summary Update a QR code
// @Description Overwrites the mutable fields of a code. The code value and image never change.
// @Tags qrcode
// @Accept json
// @Produce json
// @Param id path string true "QR code ID"
// @Param updateQRCodeRequest body handlers.UpdateQRCodeRequest true "Fields to store"
// @Success 200 {object} models.APIResponse "Updated QR code"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 404 {object} models.APIResponse "QR code not found"
// @Router /api/qrcode/{id} [put]
// @Security BearerAuth
func NewUpdateQRCodeHandler(svc QRCodeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "QR code not found")
			return
		}

		var req UpdateQRCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		expiresAt, err := parseExpiresAt(req.ExpiresAt)
		if err != nil {
			writeValidationError(w, []models.FieldError{
				{Field: "expires_at", Message: "Expiry must be an RFC3339 timestamp"},
			})
			return
		}

		updated, err := svc.Update(r.Context(), id, services.QRCodeInput{
			Title:       req.Title,
			Description: req.Description,
			Payload:     req.Data,
			ExpiresAt:   expiresAt,
			IsActive:    req.IsActive,
		})
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeValidationError(w, vErr.Fields)
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
			Message: "QR code updated successfully",
			Data:    updated,
		})
	}
}
