package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func newExportService(ctrl *gomock.Controller) (
	*services.ExportService,
	*services.MockAnalyticsProvider,
	*services.MockScanLogReader,
) {
	mockAnalytics := services.NewMockAnalyticsProvider(ctrl)
	mockScans := services.NewMockScanLogReader(ctrl)
	svc := services.NewExportService(mockAnalytics, mockScans)
	return svc, mockAnalytics, mockScans
}

func sampleVerifications() []models.VerificationWithQRCode {
	verifiedAt := time.Date(2025, 6, 15, 14, 30, 5, 0, time.UTC)
	return []models.VerificationWithQRCode{
		{
			VerificationDB: models.VerificationDB{
				VerificationID: uuid.New(),
				IPAddress:      "203.0.113.7",
				UserAgent:      "curl/8.0",
				VerifiedAt:     verifiedAt,
			},
			Code:        "a1b2c3d4e5f60718293a4b5c6d7e8f90",
			Title:       "Launch poster",
			PayloadType: "website",
		},
	}
}

func TestExportService_Export_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, mockScans := newExportService(ctrl)

	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "7d").Return(&models.AnalyticsData{TimeRange: "7d"}, nil)
	mockScans.EXPECT().ListSince(gomock.Any(), gomock.Any(), 0).Return(sampleVerifications(), nil)

	result, err := svc.Export(context.Background(), services.FormatCSV, "7d")
	assert.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.Filename, "analytics-7d-")
	assert.Contains(t, result.Filename, ".csv")

	records, err := csv.NewReader(bytes.NewReader(result.Body)).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Date", "Time", "QR Code", "Title", "Type", "IP Address"}, records[0])
	assert.Equal(t, []string{"2025-06-15", "14:30:05", "a1b2c3d4e5f60718293a4b5c6d7e8f90", "Launch poster", "website", "203.0.113.7"}, records[1])
}

func TestExportService_Export_CSV_ByteStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, mockScans := newExportService(ctrl)

	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "7d").Return(&models.AnalyticsData{TimeRange: "7d"}, nil).Times(2)
	mockScans.EXPECT().ListSince(gomock.Any(), gomock.Any(), 0).Return(sampleVerifications(), nil).Times(2)

	first, err := svc.Export(context.Background(), services.FormatCSV, "7d")
	assert.NoError(t, err)
	second, err := svc.Export(context.Background(), services.FormatCSV, "7d")
	assert.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
}

func TestExportService_Export_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, mockScans := newExportService(ctrl)

	summary := &models.AnalyticsData{
		TimeRange: "30d",
		Stats:     models.SummaryStats{TotalQRCodes: 3, TotalScans: 12},
	}
	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "30d").Return(summary, nil)
	mockScans.EXPECT().ListSince(gomock.Any(), gomock.Any(), 0).Return(sampleVerifications(), nil)

	result, err := svc.Export(context.Background(), services.FormatJSON, "30d")
	assert.NoError(t, err)
	assert.Equal(t, "application/json", result.ContentType)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Summary struct {
				TimeRange string `json:"timeRange"`
			} `json:"summary"`
			Verifications []json.RawMessage `json:"verifications"`
			ExportedAt    string            `json:"exported_at"`
			TimeRange     string            `json:"time_range"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(result.Body, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "30d", envelope.Data.Summary.TimeRange)
	assert.Equal(t, "30d", envelope.Data.TimeRange)
	assert.Len(t, envelope.Data.Verifications, 1)
	assert.NotEmpty(t, envelope.Data.ExportedAt)
}

func TestExportService_Export_PDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, mockScans := newExportService(ctrl)

	summary := &models.AnalyticsData{
		TimeRange:  "7d",
		Stats:      models.SummaryStats{TotalQRCodes: 3, ActiveQRCodes: 2, TotalScans: 12, ScansToday: 1},
		TopQRCodes: []models.TopQRCode{{Title: "Launch poster", Scans: 12}},
	}
	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "7d").Return(summary, nil)
	mockScans.EXPECT().ListSince(gomock.Any(), gomock.Any(), 0).Return(sampleVerifications(), nil)

	result, err := svc.Export(context.Background(), services.FormatPDF, "7d")
	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Contains(t, result.Filename, ".pdf")
	assert.True(t, bytes.HasPrefix(result.Body, []byte("%PDF")))
}

func TestExportService_Export_UnsupportedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, mockScans := newExportService(ctrl)

	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "7d").Return(&models.AnalyticsData{TimeRange: "7d"}, nil)
	mockScans.EXPECT().ListSince(gomock.Any(), gomock.Any(), 0).Return(nil, nil)

	result, err := svc.Export(context.Background(), "xml", "7d")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrUnsupportedFormat)
}

func TestExportService_Export_AnalyticsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAnalytics, _ := newExportService(ctrl)

	mockAnalytics.EXPECT().GetAnalytics(gomock.Any(), "7d").Return(nil, errors.New("db error"))

	result, err := svc.Export(context.Background(), services.FormatCSV, "7d")
	assert.Nil(t, result)
	assert.EqualError(t, err, "db error")
}
