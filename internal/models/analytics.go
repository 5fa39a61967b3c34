package models

import "time"

// Time ranges accepted by the analytics and export endpoints.
const (
	Range24h = "24h"
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"
)

// RangeDays maps a time range to its day-count for daily bucketing.
// 24h is bucketed as a single calendar day, not an hour series.
func RangeDays(timeRange string) int {
	switch timeRange {
	case Range24h:
		return 1
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		return 7
	}
}

// DailyScans is one zero-filled calendar-day bucket.
// swagger:model DailyScans
type DailyScans struct {
	// ISO date
	// example: 2025-01-31
	Date string `json:"date"`
	// example: 12
	Scans int64 `json:"scans"`
}

// HourlyScans is one hour-of-day bucket over the trailing 24 hours.
// swagger:model HourlyScans
type HourlyScans struct {
	// example: 14
	Hour int `json:"hour"`
	// example: 3
	Scans int64 `json:"scans"`
}

// TopQRCode is one ranked entry of the most-scanned codes.
// swagger:model TopQRCode
type TopQRCode struct {
	// example: Launch poster
	Title string `json:"title"`
	// example: 100
	Scans int64 `json:"scans"`
}

// DeviceTypeCount is one device-class slice of the scan volume.
// swagger:model DeviceTypeCount
type DeviceTypeCount struct {
	// example: Mobile
	Type string `json:"type"`
	// example: 65
	Count int64 `json:"count"`
	// example: 65
	Percentage int `json:"percentage"`
}

// SummaryStats are the headline counters.
// avg_daily_scans divides total scans by a fixed 30 days.
// swagger:model SummaryStats
type SummaryStats struct {
	TotalQRCodes  int64 `json:"total_qr_codes"`
	ActiveQRCodes int64 `json:"active_qr_codes"`
	TotalScans    int64 `json:"total_scans"`
	ScansToday    int64 `json:"scans_today"`
	AvgDailyScans int64 `json:"avg_daily_scans"`
}

// RecentScanQRCode identifies the code a recent scan resolved.
// swagger:model RecentScanQRCode
type RecentScanQRCode struct {
	// example: Launch poster
	Title string `json:"title"`
	// example: 0123456789abcdef0123456789abcdef
	Code string `json:"code"`
}

// RecentScan is one entry of the stats endpoint's recent-scan list.
// swagger:model RecentScan
type RecentScan struct {
	VerifiedAt time.Time        `json:"verified_at"`
	QRCode     RecentScanQRCode `json:"qr_codes"`
}

// AnalyticsData is the full aggregator payload for one time range.
// swagger:model AnalyticsData
type AnalyticsData struct {
	TimeRange      string            `json:"timeRange"`
	Stats          SummaryStats      `json:"stats"`
	ScansByDay     []DailyScans      `json:"scansByDay"`
	HourlyActivity []HourlyScans     `json:"hourlyActivity"`
	TopQRCodes     []TopQRCode       `json:"topQRCodes"`
	DeviceTypes    []DeviceTypeCount `json:"deviceTypes"`
}
