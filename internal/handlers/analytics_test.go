package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnalyticsReader(ctrl)
	handler := NewAnalyticsHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			GetAnalytics(gomock.Any(), "30d").
			Return(&models.AnalyticsData{TimeRange: "30d"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode/analytics?timeRange=30d", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
	})

	t.Run("missing timeRange passed as empty", func(t *testing.T) {
		mockSvc.EXPECT().
			GetAnalytics(gomock.Any(), "").
			Return(&models.AnalyticsData{TimeRange: "7d"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode/analytics", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			GetAnalytics(gomock.Any(), "7d").
			Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode/analytics?timeRange=7d", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsReader(ctrl)
	handler := NewStatsHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetStats(gomock.Any()).Return(&services.StatsOverview{
			Stats: services.StatsCounters{TotalQRCodes: 3, TotalScans: 12},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode/stats", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/qrcode/stats", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
