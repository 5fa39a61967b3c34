package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetQRCodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQRCodeGetter(ctrl)
	handler := NewGetQRCodeHandler(mockSvc)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(&services.QRCodeDetails{
			QRCodeView: services.QRCodeView{
				QRCodeListItem: models.QRCodeListItem{
					QRCodeDB:          models.QRCodeDB{QRCodeID: id, Title: "Poster"},
					CreatedByUsername: "admin",
				},
			},
			Verifications: []models.VerificationDB{},
		}, nil)

		req := newRouteRequest(http.MethodGet, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
		assert.Contains(t, w.Body.String(), `"qrcode":`)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrQRCodeNotFound)

		req := newRouteRequest(http.MethodGet, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "QR code not found", decodeEnvelope(t, w.Body.Bytes()).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := newRouteRequest(http.MethodGet, "/api/qrcode/not-a-uuid", "id", "not-a-uuid")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("db error"))

		req := newRouteRequest(http.MethodGet, "/api/qrcode/"+id.String(), "id", id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
