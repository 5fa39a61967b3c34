package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/middlewares"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("healthy", func(t *testing.T) {
		mockDB := NewMockPinger(ctrl)
		mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		NewHealthHandler(mockDB).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		mockDB := NewMockPinger(ctrl)
		mockDB.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		NewHealthHandler(mockDB).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("nil pinger skips the probe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		NewHealthHandler(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	handler := NewProfileHandler()

	t.Run("returns the authenticated account", func(t *testing.T) {
		user := &models.UserDB{UserID: uuid.New(), Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req = req.WithContext(middlewares.ContextWithUser(req.Context(), user))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, resp.Success)
	})

	t.Run("missing user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	NewLogoutHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decodeEnvelope(t, w.Body.Bytes()).Message)
}
