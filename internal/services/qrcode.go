package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/repositories"
)

// Error variables
var (
	ErrQRCodeNotFound = errors.New("qr code not found")
)

// ValidationError carries field-level detail for a 400 response.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string { return "validation error" }

// QRCodeReader defines read operations for the lifecycle manager.
type QRCodeReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.QRCodeListItem, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.QRCodeListItem, int64, error)
}

// QRCodeWriter defines write operations for the lifecycle manager.
type QRCodeWriter interface {
	Insert(ctx context.Context, code, title, description, data, qrImage string, createdBy uuid.UUID, expiresAt *time.Time) (*models.QRCodeDB, error)
	Update(ctx context.Context, id uuid.UUID, title, description, data string, expiresAt *time.Time, isActive bool) (*models.QRCodeDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Allocator produces unique codes and their artifacts.
type Allocator interface {
	Allocate(ctx context.Context) (string, error)
	VerificationURL(code string) string
	RenderArtifact(url string) (string, error)
}

// VerificationLister loads the scan events attached to a code.
type VerificationLister interface {
	ListByQRCodeID(ctx context.Context, qrCodeID uuid.UUID) ([]models.VerificationDB, error)
}

// QRCodeInput is the mutable-field set accepted by create and update.
type QRCodeInput struct {
	Title       string
	Description string
	Payload     models.Payload
	ExpiresAt   *time.Time
	IsActive    *bool // update only; nil keeps the stored value
}

// QRCodeView is a code with its payload deserialized for responses.
type QRCodeView struct {
	models.QRCodeListItem
	Data models.Payload `json:"data"`
}

// CreatedQRCode is the create result: the stored entity plus the URL its
// artifact encodes.
type CreatedQRCode struct {
	QRCode          QRCodeView
	VerificationURL string
}

// QRCodeDetails is a code with its scan events, returned by Get.
type QRCodeDetails struct {
	QRCodeView
	Verifications []models.VerificationDB `json:"verifications"`
}

// QRCodeService is the lifecycle manager for codes.
type QRCodeService struct {
	reader        QRCodeReader
	writer        QRCodeWriter
	registry      Allocator
	verifications VerificationLister
}

// NewQRCodeService creates a new QRCodeService instance.
func NewQRCodeService(reader QRCodeReader, writer QRCodeWriter, registry Allocator, verifications VerificationLister) *QRCodeService {
	return &QRCodeService{
		reader:        reader,
		writer:        writer,
		registry:      registry,
		verifications: verifications,
	}
}

func validateInput(input QRCodeInput) error {
	var fields []models.FieldError
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "Title is required"})
	}
	if err := input.Payload.Validate(); err != nil {
		fields = append(fields, models.FieldError{Field: "data", Message: "Data must be a valid payload object"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create validates the input, allocates a unique code, renders its
// artifact and persists the record. A unique-constraint conflict on
// insert means another allocation won the race; it is retried with a
// fresh code within the allocation bound.
func (svc *QRCodeService) Create(ctx context.Context, createdBy uuid.UUID, input QRCodeInput) (*CreatedQRCode, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Payload)
	if err != nil {
		logger.Log.Errorw("failed to serialize payload", "err", err)
		return nil, err
	}

	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		code, err := svc.registry.Allocate(ctx)
		if err != nil {
			return nil, err
		}

		url := svc.registry.VerificationURL(code)
		artifact, err := svc.registry.RenderArtifact(url)
		if err != nil {
			logger.Log.Errorw("failed to render qr artifact", "err", err)
			return nil, err
		}

		qr, err := svc.writer.Insert(ctx, code, strings.TrimSpace(input.Title), input.Description, string(data), artifact, createdBy, input.ExpiresAt)
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("code collided on insert, retrying", "attempt", attempt)
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to insert qr code", "err", err)
			return nil, err
		}

		return &CreatedQRCode{
			QRCode: QRCodeView{
				QRCodeListItem: models.QRCodeListItem{QRCodeDB: *qr},
				Data:           input.Payload,
			},
			VerificationURL: url,
		}, nil
	}

	return nil, ErrCodeAllocationExhausted
}

// Get returns a code with its creator username and scan events.
func (svc *QRCodeService) Get(ctx context.Context, id uuid.UUID) (*QRCodeDetails, error) {
	qr, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get qr code", "id", id, "err", err)
		return nil, err
	}
	if qr == nil {
		return nil, ErrQRCodeNotFound
	}

	verifications, err := svc.verifications.ListByQRCodeID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list verifications", "id", id, "err", err)
		return nil, err
	}

	return &QRCodeDetails{
		QRCodeView:    QRCodeView{QRCodeListItem: *qr, Data: parsePayload(qr.Data)},
		Verifications: verifications,
	}, nil
}

// Update overwrites the mutable fields of a code. Omitted is_active keeps
// the stored value.
func (svc *QRCodeService) Update(ctx context.Context, id uuid.UUID, input QRCodeInput) (*QRCodeView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to fetch qr code for update", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrQRCodeNotFound
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	data, err := json.Marshal(input.Payload)
	if err != nil {
		logger.Log.Errorw("failed to serialize payload", "err", err)
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, strings.TrimSpace(input.Title), input.Description, string(data), input.ExpiresAt, isActive)
	if err != nil {
		logger.Log.Errorw("failed to update qr code", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrQRCodeNotFound
	}

	return &QRCodeView{
		QRCodeListItem: models.QRCodeListItem{QRCodeDB: *updated, CreatedByUsername: existing.CreatedByUsername},
		Data:           input.Payload,
	}, nil
}

// Delete removes a code; the store cascade removes its scan events.
func (svc *QRCodeService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete qr code", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrQRCodeNotFound
	}
	return nil
}

// List returns a page of codes matching the filter. Page and limit
// default to 1 and 10.
func (svc *QRCodeService) List(ctx context.Context, filter models.ListFilter) ([]QRCodeView, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Status == "" {
		filter.Status = models.StatusAll
	}

	items, total, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list qr codes", "err", err)
		return nil, nil, err
	}

	views := make([]QRCodeView, 0, len(items))
	for _, item := range items {
		views = append(views, QRCodeView{QRCodeListItem: item, Data: parsePayload(item.Data)})
	}

	pages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	return views, &models.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

// parsePayload deserializes a stored payload, tolerating legacy empty
// values the way the read path always has.
func parsePayload(data string) models.Payload {
	var p models.Payload
	if data == "" {
		return p
	}
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		logger.Log.Warnw("failed to parse stored payload", "err", err)
	}
	return p
}
