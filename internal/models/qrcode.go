package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Payload types accepted for a QR code.
const (
	PayloadTypeWebsite  = "website"
	PayloadTypeText     = "text"
	PayloadTypeContact  = "contact"
	PayloadTypeDocument = "document"
)

// ErrInvalidPayloadType is returned when the payload type is not one of the
// supported values.
var ErrInvalidPayloadType = errors.New("invalid payload type")

// Payload is the structured content a QR code resolves to.
// swagger:model Payload
type Payload struct {
	// Content type
	// required: true
	// example: website
	Type string `json:"type"`

	// Target URL for website/document payloads
	// example: https://example.com
	URL string `json:"url,omitempty"`

	// Free-form message for text/contact payloads
	// example: hello
	Message string `json:"message,omitempty"`
}

// Validate checks that the payload type is one of the supported values.
func (p Payload) Validate() error {
	switch p.Type {
	case PayloadTypeWebsite, PayloadTypeText, PayloadTypeContact, PayloadTypeDocument:
		return nil
	}
	return ErrInvalidPayloadType
}

// QRCodeDB is the qr_codes table row.
type QRCodeDB struct {
	QRCodeID    uuid.UUID  `db:"qr_code_id" json:"id"`
	Code        string     `db:"code" json:"code"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Data        string     `db:"data" json:"-"`
	QRImage     string     `db:"qr_image" json:"qr_image"`
	CreatedBy   uuid.UUID  `db:"created_by" json:"created_by"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	ExpiresAt   *time.Time `db:"expires_at" json:"expires_at"`
	ScanCount   int64      `db:"scan_count" json:"scan_count"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// QRCodeListItem is a qr_codes row joined with the creator's username.
type QRCodeListItem struct {
	QRCodeDB
	CreatedByUsername string `db:"created_by_username" json:"created_by_username"`
}

// Status filters accepted by the list operation.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

// ListFilter narrows and pages the qr_codes listing.
type ListFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// Pagination describes a page of results.
// swagger:model Pagination
type Pagination struct {
	// example: 1
	Page int `json:"page"`
	// example: 10
	Limit int `json:"limit"`
	// example: 42
	Total int64 `json:"total"`
	// example: 5
	Pages int64 `json:"pages"`
}
