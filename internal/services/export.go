package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ErrUnsupportedFormat is returned for formats other than csv, json, pdf.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// AnalyticsProvider supplies the aggregated payload for a time range.
type AnalyticsProvider interface {
	GetAnalytics(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
}

// ExportResult is a rendered export ready to be served.
type ExportResult struct {
	ContentType string
	Filename    string
	Body        []byte
}

// jsonExport is the body of the JSON export format.
type jsonExport struct {
	Summary       *models.AnalyticsData           `json:"summary"`
	Verifications []models.VerificationWithQRCode `json:"verifications"`
	ExportedAt    string                          `json:"exported_at"`
	TimeRange     string                          `json:"time_range"`
}

// ExportService renders analytics and the verification log in flat
// formats. Read-only; CSV and JSON are byte-stable over an unchanged log,
// the PDF report carries its generation timestamp.
type ExportService struct {
	analytics AnalyticsProvider
	scans     ScanLogReader
}

// NewExportService creates a new ExportService.
func NewExportService(analytics AnalyticsProvider, scans ScanLogReader) *ExportService {
	return &ExportService{
		analytics: analytics,
		scans:     scans,
	}
}

// Export re-runs the aggregation plus the flat verification list for the
// window and serializes it in the requested format.
func (svc *ExportService) Export(ctx context.Context, format, timeRange string) (*ExportResult, error) {
	timeRange = NormalizeRange(timeRange)

	summary, err := svc.analytics.GetAnalytics(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	verifications, err := svc.scans.ListSince(ctx, rangeStart(now, timeRange), 0)
	if err != nil {
		logger.Log.Errorw("failed to list verifications for export", "err", err)
		return nil, err
	}

	filename := fmt.Sprintf("analytics-%s-%s", timeRange, now.UTC().Format("2006-01-02"))

	switch format {
	case FormatCSV:
		body, err := renderCSV(verifications)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			ContentType: "text/csv",
			Filename:    filename + ".csv",
			Body:        body,
		}, nil

	case FormatJSON:
		body, err := json.Marshal(models.APIResponse{
			Success: true,
			Data: jsonExport{
				Summary:       summary,
				Verifications: verifications,
				ExportedAt:    now.UTC().Format(time.RFC3339),
				TimeRange:     timeRange,
			},
		})
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			ContentType: "application/json",
			Body:        body,
		}, nil

	case FormatPDF:
		body, err := renderPDF(summary, verifications, timeRange, now)
		if err != nil {
			logger.Log.Errorw("failed to render pdf report", "err", err)
			return nil, err
		}
		return &ExportResult{
			ContentType: "application/pdf",
			Filename:    filename + ".pdf",
			Body:        body,
		}, nil
	}

	return nil, ErrUnsupportedFormat
}

// renderCSV writes one row per verification, newest first, with fixed
// date/time formats so identical inputs yield identical bytes.
func renderCSV(verifications []models.VerificationWithQRCode) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Time", "QR Code", "Title", "Type", "IP Address"}); err != nil {
		return nil, err
	}
	for _, v := range verifications {
		record := []string{
			v.VerifiedAt.Format("2006-01-02"),
			v.VerifiedAt.Format("15:04:05"),
			v.Code,
			v.Title,
			v.PayloadType,
			v.IPAddress,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderPDF builds the tabular report: headline stats, top codes, and the
// most recent verifications.
func renderPDF(summary *models.AnalyticsData, verifications []models.VerificationWithQRCode, timeRange string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, fmt.Sprintf("Analytics Report - %s", timeRange))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Statistics")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total QR Codes: %d", summary.Stats.TotalQRCodes))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Active QR Codes: %d", summary.Stats.ActiveQRCodes))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total Scans: %d", summary.Stats.TotalScans))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Scans Today: %d", summary.Stats.ScansToday))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Top Performing QR Codes")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	for i, top := range summary.TopQRCodes {
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s - %d scans", i+1, top.Title, top.Scans))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Recent Verifications")
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(35, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 7, "QR Code", "1", 0, "", false, 0, "")
	pdf.CellFormat(70, 7, "Title", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "IP Address", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	limit := len(verifications)
	if limit > recentScansLimit {
		limit = recentScansLimit
	}
	for _, v := range verifications[:limit] {
		code := v.Code
		if len(code) > 12 {
			code = code[:12]
		}
		pdf.CellFormat(35, 7, v.VerifiedAt.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, code, "1", 0, "", false, 0, "")
		pdf.CellFormat(70, 7, v.Title, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, v.IPAddress, "1", 1, "", false, 0, "")
	}

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on %s", now.UTC().Format(time.RFC1123)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
