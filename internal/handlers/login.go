package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for admin login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: admin
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponseData is the payload of a successful login
// swagger:model LoginResponseData
type LoginResponseData struct {
	// JWT token
	// default: JWT_TOKEN
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func validateLogin(username, password string) []models.FieldError {
	var fields []models.FieldError
	if len(username) < 3 {
		fields = append(fields, models.FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	}
	if len(password) < 6 {
		fields = append(fields, models.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return fields
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticates an admin account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.APIResponse "Token and account"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if fields := validateLogin(req.Username, req.Password); len(fields) > 0 {
			writeValidationError(w, fields)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			case errors.Is(err, services.ErrAccountInactive):
				writeError(w, http.StatusUnauthorized, "Account is deactivated")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Login successful",
			Data: LoginResponseData{
				Token: token,
				User:  newUserView(user),
			},
		})
	}
}
