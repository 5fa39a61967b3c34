package handlers

import (
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// NewLogoutHandler returns an HTTP handler for logout. Tokens are
// stateless, so logout only acknowledges; the client drops the token.
// @Summary Logout
// @Description Acknowledges logout. The client discards its token.
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse "Logged out"
// @Router /api/auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}
