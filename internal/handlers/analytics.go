package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// AnalyticsReader defines the interface that the service must implement.
type AnalyticsReader interface {
	GetAnalytics(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
}

// NewAnalyticsHandler returns an HTTP handler for the aggregated report.
// @Summary Analytics report
// @Description Returns daily and hourly scan buckets, top codes and the device breakdown for a time range.
// @Tags analytics
// @Produce json
// @Param timeRange query string false "24h, 7d, 30d or 90d" default(7d)
// @Success 200 {object} models.APIResponse "Aggregated analytics"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/qrcode/analytics [get]
// @Security BearerAuth
func NewAnalyticsHandler(svc AnalyticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.GetAnalytics(r.Context(), r.URL.Query().Get("timeRange"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data:    data,
		})
	}
}
