package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/middlewares"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// QRCodeCreator defines the interface that the service must implement.
type QRCodeCreator interface {
	Create(ctx context.Context, createdBy uuid.UUID, input services.QRCodeInput) (*services.CreatedQRCode, error)
}

// CreateQRCodeRequest represents the JSON body for issuing a new code
// swagger:model CreateQRCodeRequest
type CreateQRCodeRequest struct {
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

	// Expiry timestamp, RFC3339. Empty means the code never expires.
	// default: 2026-12-31T23:59:59Z
	ExpiresAt string `json:"expires_at,omitempty"`
}

// CreateQRCodeResponseData is the payload of a successful create
// swagger:model CreateQRCodeResponseData
type CreateQRCodeResponseData struct {
	QRCode          services.QRCodeView `json:"qrcode"`
	VerificationURL string              `json:"verification_url"`
}

// NewCreateQRCodeHandler returns an HTTP handler for issuing a new code.
// @Summary Create a QR code
// @Description Allocates a unique code, renders its QR image and stores the record.
// @Tags qrcode
// @Accept json
// @Produce json
// @Param createQRCodeRequest body handlers.CreateQRCodeRequest true "QR code to create"
// @Success 201 {object} models.APIResponse "QR code created"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/qrcode [post]
// @Security BearerAuth
func NewCreateQRCodeHandler(svc QRCodeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req CreateQRCodeRequest
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

		created, err := svc.Create(r.Context(), user.UserID, services.QRCodeInput{
			Title:       req.Title,
			Description: req.Description,
			Payload:     req.Data,
			ExpiresAt:   expiresAt,
		})
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeValidationError(w, vErr.Fields)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "QR code created successfully",
			Data: CreateQRCodeResponseData{
				QRCode:          created.QRCode,
				VerificationURL: created.VerificationURL,
			},
		})
	}
}
