package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// StatsReader defines the interface that the service must implement.
type StatsReader interface {
	GetStats(ctx context.Context) (*services.StatsOverview, error)
}

// NewStatsHandler returns an HTTP handler for the dashboard counters.
// @Summary Dashboard stats
// @Description Returns headline counters and the latest scans of the trailing week.
// @Tags analytics
// @Produce json
// @Success 200 {object} models.APIResponse "Counters and recent scans"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/qrcode/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.GetStats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data:    overview,
		})
	}
}
