package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// Pinger checks storage connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthData is the health endpoint payload
// swagger:model HealthData
type HealthData struct {
	// default: ok
	Status string `json:"status"`
	// default: 2026-01-02T15:04:05Z
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Description Reports service and storage health.
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is healthy"
// @Failure 503 {object} models.APIResponse "Storage unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Log.Errorw("health check failed", "err", err)
				writeError(w, http.StatusServiceUnavailable, "Storage unreachable")
				return
			}
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data: HealthData{
				Status:    "ok",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}
