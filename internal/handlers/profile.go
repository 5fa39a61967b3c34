package handlers

import (
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/middlewares"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// NewProfileHandler returns an HTTP handler for the authenticated account.
// @Summary Current account
// @Description Returns the account behind the presented access token.
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse "Account"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/auth/profile [get]
// @Security BearerAuth
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data:    newUserView(user),
		})
	}
}
