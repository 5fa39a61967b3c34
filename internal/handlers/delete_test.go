package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteQRCodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQRCodeDeleter(ctrl)
	handler := NewDeleteQRCodeHandler(mockSvc)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

		req := newRouteRequest(http.MethodDelete, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "QR code deleted successfully", decodeEnvelope(t, w.Body.Bytes()).Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(services.ErrQRCodeNotFound)

		req := newRouteRequest(http.MethodDelete, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db error"))

		req := newRouteRequest(http.MethodDelete, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
