package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceInfo is the structured snapshot stored with each scan event.
type DeviceInfo struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Device    string `json:"device,omitempty"`
	Timestamp string `json:"timestamp"`
}

// VerificationDB is the verifications table row. Rows are append-only and
// removed only by cascade when the parent qr_codes row is deleted.
type VerificationDB struct {
	VerificationID uuid.UUID `db:"verification_id" json:"id"`
	QRCodeID       uuid.UUID `db:"qr_code_id" json:"qr_code_id"`
	IPAddress      string    `db:"ip_address" json:"ip_address"`
	UserAgent      string    `db:"user_agent" json:"user_agent"`
	DeviceInfo     []byte    `db:"device_info" json:"-"`
	VerifiedAt     time.Time `db:"verified_at" json:"verified_at"`
}

// VerificationWithQRCode joins a scan event with its parent code's
// title, code and payload type for reporting and export.
type VerificationWithQRCode struct {
	VerificationDB
	Code        string `db:"code" json:"code"`
	Title       string `db:"title" json:"title"`
	PayloadType string `db:"payload_type" json:"payload_type"`
}

// ScanEvent is the message published to Kafka for each recorded scan.
type ScanEvent struct {
	EventID    string `json:"event_id"`
	QRCodeID   string `json:"qr_code_id"`
	Code       string `json:"code"`
	IPAddress  string `json:"ip_address"`
	UserAgent  string `json:"user_agent"`
	VerifiedAt int64  `json:"verified_at"`
}
