package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func newUpdateRequest(t *testing.T, id string, body interface{}) *http.Request {
	t.Helper()
	var raw []byte
	switch v := body.(type) {
	case string:
		raw = []byte(v)
	default:
		var err error
		raw, err = json.Marshal(v)
		assert.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPut, "/api/qrcode/"+id, bytes.NewReader(raw))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateQRCodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQRCodeUpdater(ctrl)
	handler := NewUpdateQRCodeHandler(mockSvc)

	id := uuid.New()

	t.Run("success with explicit is_active", func(t *testing.T) {
		inactive := false
		mockSvc.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, input services.QRCodeInput) (*services.QRCodeView, error) {
				assert.NotNil(t, input.IsActive)
				assert.False(t, *input.IsActive)
				return &services.QRCodeView{
					QRCodeListItem: models.QRCodeListItem{QRCodeDB: models.QRCodeDB{QRCodeID: id}},
				}, nil
			})

		req := newUpdateRequest(t, id.String(), UpdateQRCodeRequest{
			Title:    "Poster",
			Data:     models.Payload{Type: "website", URL: "https://example.com"},
			IsActive: &inactive,
		})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "QR code updated successfully", decodeEnvelope(t, w.Body.Bytes()).Message)
	})

	t.Run("omitted is_active stays nil", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, input services.QRCodeInput) (*services.QRCodeView, error) {
				assert.Nil(t, input.IsActive)
				return &services.QRCodeView{}, nil
			})

		req := newUpdateRequest(t, id.String(), `{"title":"Poster","data":{"type":"website","url":"https://example.com"}}`)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(nil, services.ErrQRCodeNotFound)

		req := newUpdateRequest(t, id.String(), UpdateQRCodeRequest{
			Title: "Poster",
			Data:  models.Payload{Type: "website", URL: "https://example.com"},
		})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := newUpdateRequest(t, "nope", "{}")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid expires_at", func(t *testing.T) {
		req := newUpdateRequest(t, id.String(), `{"title":"Poster","data":{"type":"website","url":"https://example.com"},"expires_at":"soon"}`)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
