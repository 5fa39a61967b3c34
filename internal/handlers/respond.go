package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// writeJSON writes the uniform response envelope.
func writeJSON(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeError writes a failure envelope with a single message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.APIResponse{
		Success: false,
		Message: message,
	})
}

// writeValidationError writes a 400 envelope carrying field-level errors.
func writeValidationError(w http.ResponseWriter, fields []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, models.APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  fields,
	})
}

// UserView is the account shape returned by the auth endpoints
// swagger:model UserView
type UserView struct {
	// default: 9e8c1f2a-0b3d-4c5e-8f6a-7b8c9d0e1f2a
	ID string `json:"id"`
	// default: admin
	Username string `json:"username"`
	// default: admin@example.com
	Email string `json:"email"`
	// default: admin
	Role string `json:"role"`
}

func newUserView(user *models.UserDB) UserView {
	return UserView{
		ID:       user.UserID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// parseExpiresAt parses an optional RFC3339 expiry. Empty means no expiry.
func parseExpiresAt(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
