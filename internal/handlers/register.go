package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for admin registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: admin
	Username string `json:"username"`

	// Email
	// required: true
	// default: admin@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

func validateRegister(req RegisterRequest) []models.FieldError {
	fields := validateLogin(req.Username, req.Password)
	if !strings.Contains(req.Email, "@") {
		fields = append(fields, models.FieldError{Field: "email", Message: "Email must be a valid address"})
	}
	return fields
}

// NewRegisterHandler returns an HTTP handler for admin registration.
// @Summary Register an admin
// @Description Creates a new admin account. Username and email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} models.APIResponse "Account created"
// @Failure 400 {object} models.APIResponse "Validation failed or account exists"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if fields := validateRegister(req); len(fields) > 0 {
			writeValidationError(w, fields)
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "User registered successfully",
			Data:    newUserView(user),
		})
	}
}
