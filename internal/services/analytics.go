package services

import (
	"context"
	"math"
	"time"

	"github.com/sbilibin2017/qr-verification-service/internal/devices"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

const (
	topCodesLimit    = 5
	recentScansLimit = 10
	// avg_daily_scans has always divided by a flat month regardless of
	// the requested window; reported numbers keep that behavior.
	avgScanDivisorDays = 30
)

// QRCodeStatsReader reads aggregate counters from the qr_codes table.
type QRCodeStatsReader interface {
	TopByScanCount(ctx context.Context, limit int) ([]models.TopQRCode, error)
	Totals(ctx context.Context) (total, active, totalScans int64, err error)
}

// ScanLogReader reads the verification log.
type ScanLogReader interface {
	TimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error)
	ListSince(ctx context.Context, since time.Time, limit int) ([]models.VerificationWithQRCode, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// AnalyticsCache caches aggregated payloads per time range.
type AnalyticsCache interface {
	Get(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
	Set(ctx context.Context, data *models.AnalyticsData) error
}

// StatsCounters are the headline counters of the stats endpoint.
type StatsCounters struct {
	TotalQRCodes  int64 `json:"total_qr_codes"`
	ActiveQRCodes int64 `json:"active_qr_codes"`
	TotalScans    int64 `json:"total_scans"`
	ScansToday    int64 `json:"scans_today"`
}

// StatsOverview is the stats endpoint payload: counters plus the latest
// scans of the trailing week.
type StatsOverview struct {
	Stats       StatsCounters       `json:"stats"`
	RecentScans []models.RecentScan `json:"recent_scans"`
}

// AnalyticsService derives reporting views from the verification log and
// the qr_codes counters. Read-only.
type AnalyticsService struct {
	stats      QRCodeStatsReader
	scans      ScanLogReader
	cache      AnalyticsCache
	classifier devices.Classifier
}

// NewAnalyticsService creates a new AnalyticsService. cache may be nil.
func NewAnalyticsService(stats QRCodeStatsReader, scans ScanLogReader, cache AnalyticsCache, classifier devices.Classifier) *AnalyticsService {
	return &AnalyticsService{
		stats:      stats,
		scans:      scans,
		cache:      cache,
		classifier: classifier,
	}
}

// NormalizeRange maps an unknown time range to the 7d default.
func NormalizeRange(timeRange string) string {
	switch timeRange {
	case models.Range24h, models.Range7d, models.Range30d, models.Range90d:
		return timeRange
	}
	return models.Range7d
}

// rangeStart returns the window start for a time range.
func rangeStart(now time.Time, timeRange string) time.Time {
	if timeRange == models.Range24h {
		return now.Add(-24 * time.Hour)
	}
	return now.AddDate(0, 0, -models.RangeDays(timeRange))
}

// GetAnalytics returns the full aggregator payload for a time range,
// serving from cache when possible.
func (svc *AnalyticsService) GetAnalytics(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	timeRange = NormalizeRange(timeRange)

	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx, timeRange); err == nil {
			return cached, nil
		}
	}

	data, err := svc.aggregate(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, data); err != nil {
			logger.Log.Errorw("failed to cache analytics", "timeRange", timeRange, "err", err)
		}
	}

	return data, nil
}

func (svc *AnalyticsService) aggregate(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	now := time.Now()

	stamps, err := svc.scans.TimestampsSince(ctx, rangeStart(now, timeRange))
	if err != nil {
		logger.Log.Errorw("failed to read scan timestamps", "err", err)
		return nil, err
	}

	// Daily buckets keyed by ISO date, zero-filled across the window.
	dailyScans := make(map[string]int64, len(stamps))
	for _, ts := range stamps {
		dailyScans[ts.UTC().Format("2006-01-02")]++
	}

	days := models.RangeDays(timeRange)
	scansByDay := make([]models.DailyScans, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).UTC().Format("2006-01-02")
		scansByDay = append(scansByDay, models.DailyScans{Date: date, Scans: dailyScans[date]})
	}

	// Hourly buckets always cover the trailing 24 hours, keyed by
	// hour-of-day.
	last24, err := svc.scans.TimestampsSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		logger.Log.Errorw("failed to read hourly scan timestamps", "err", err)
		return nil, err
	}
	hourlyActivity := make([]models.HourlyScans, 24)
	for i := range hourlyActivity {
		hourlyActivity[i].Hour = i
	}
	for _, ts := range last24 {
		hourlyActivity[ts.Hour()].Scans++
	}

	topCodes, err := svc.stats.TopByScanCount(ctx, topCodesLimit)
	if err != nil {
		logger.Log.Errorw("failed to read top codes", "err", err)
		return nil, err
	}

	total, active, totalScans, err := svc.stats.Totals(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read qr code totals", "err", err)
		return nil, err
	}

	today := now.UTC().Format("2006-01-02")

	return &models.AnalyticsData{
		TimeRange: timeRange,
		Stats: models.SummaryStats{
			TotalQRCodes:  total,
			ActiveQRCodes: active,
			TotalScans:    totalScans,
			ScansToday:    dailyScans[today],
			AvgDailyScans: int64(math.Round(float64(totalScans) / avgScanDivisorDays)),
		},
		ScansByDay:     scansByDay,
		HourlyActivity: hourlyActivity,
		TopQRCodes:     topCodes,
		DeviceTypes:    svc.classifier.Breakdown(int64(len(stamps))),
	}, nil
}

// GetStats returns the headline counters and the last scans of the
// trailing week.
func (svc *AnalyticsService) GetStats(ctx context.Context) (*StatsOverview, error) {
	now := time.Now()

	total, active, totalScans, err := svc.stats.Totals(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read qr code totals", "err", err)
		return nil, err
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	scansToday, err := svc.scans.CountSince(ctx, midnight)
	if err != nil {
		logger.Log.Errorw("failed to count today's scans", "err", err)
		return nil, err
	}

	recent, err := svc.scans.ListSince(ctx, now.AddDate(0, 0, -7), recentScansLimit)
	if err != nil {
		logger.Log.Errorw("failed to list recent scans", "err", err)
		return nil, err
	}

	recentScans := make([]models.RecentScan, 0, len(recent))
	for _, v := range recent {
		recentScans = append(recentScans, models.RecentScan{
			VerifiedAt: v.VerifiedAt,
			QRCode: models.RecentScanQRCode{
				Title: v.Title,
				Code:  v.Code,
			},
		})
	}

	return &StatsOverview{
		Stats: StatsCounters{
			TotalQRCodes:  total,
			ActiveQRCodes: active,
			TotalScans:    totalScans,
			ScansToday:    scansToday,
		},
		RecentScans: recentScans,
	}, nil
}
