package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// Exporter defines the interface that the service must implement.
type Exporter interface {
	Export(ctx context.Context, format, timeRange string) (*services.ExportResult, error)
}

// NewExportHandler returns an HTTP handler for downloading analytics.
// @Summary Export analytics
// @Description Renders the analytics report and verification log as CSV, JSON or PDF.
// @Tags analytics
// @Produce json
// @Param format query string false "csv, json or pdf" default(csv)
// @Param timeRange query string false "24h, 7d, 30d or 90d" default(7d)
// @Success 200 {file} file "Rendered export"
// @Failure 400 {object} models.APIResponse "Unsupported format"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/qrcode/export [get]
// @Security BearerAuth
func NewExportHandler(svc Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = services.FormatCSV
		}

		result, err := svc.Export(r.Context(), format, r.URL.Query().Get("timeRange"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedFormat):
				writeError(w, http.StatusBadRequest, "Unsupported export format")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		if result.Filename != "" {
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		}
		w.WriteHeader(http.StatusOK)
		w.Write(result.Body)
	}
}
