package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListQRCodesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQRCodeLister(ctrl)
	handler := NewListQRCodesHandler(mockSvc)

	t.Run("passes query params through", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), models.ListFilter{Search: "poster", Status: "expired", Page: 2, Limit: 5}).
			Return([]services.QRCodeView{}, &models.Pagination{Page: 2, Limit: 5}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode?search=poster&status=expired&page=2&limit=5", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
		assert.Contains(t, w.Body.String(), `"qrcodes":`)
		assert.Contains(t, w.Body.String(), `"pagination":`)
	})

	t.Run("missing params default to zero values", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), models.ListFilter{}).
			Return(nil, &models.Pagination{Page: 1, Limit: 10}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
