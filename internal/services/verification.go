package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrQRCodeInactive = errors.New("qr code is inactive")
	ErrQRCodeExpired  = errors.New("qr code has expired")
)

// CodeGetter resolves a code to its record.
type CodeGetter interface {
	GetByCode(ctx context.Context, code string) (*models.QRCodeDB, error)
}

// ScanRecorder appends scan events.
type ScanRecorder interface {
	Insert(ctx context.Context, qrCodeID uuid.UUID, ipAddress, userAgent string, deviceInfo []byte) error
}

// ScanCounter increments the per-code scan counter.
type ScanCounter interface {
	IncrementScanCount(ctx context.Context, id uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// VerificationResult is the public payload returned for a successful scan.
type VerificationResult struct {
	ID          uuid.UUID      `json:"id"`
	Code        string         `json:"code"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Data        models.Payload `json:"data"`
	CreatedAt   time.Time      `json:"created_at"`
	ScanCount   int64          `json:"scan_count"`
}

// VerificationService is the public trust-critical scan path.
type VerificationService struct {
	codes       CodeGetter
	recorder    ScanRecorder
	counter     ScanCounter
	kafkaWriter KafkaWriter
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(codes CodeGetter, recorder ScanRecorder, counter ScanCounter, kafkaWriter KafkaWriter) *VerificationService {
	return &VerificationService{
		codes:       codes,
		recorder:    recorder,
		counter:     counter,
		kafkaWriter: kafkaWriter,
	}
}

// publishScanEvent publishes a recorded scan to Kafka. Best-effort: a
// publish failure never fails the scan.
func (svc *VerificationService) publishScanEvent(ctx context.Context, event models.ScanEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal scan event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Code),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish scan event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Scan event published to Kafka", "event_id", event.EventID, "code", event.Code)
	}
}

// Verify resolves a code and logs the access. State checks happen before
// any write: an unknown, inactive or expired code records nothing. The
// scan-event insert and counter increment share the request transaction,
// and the increment itself is atomic at the store.
func (svc *VerificationService) Verify(ctx context.Context, code, ipAddress, userAgent string) (*VerificationResult, error) {
	qr, err := svc.codes.GetByCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to look up code", "code", code, "err", err)
		return nil, err
	}
	if qr == nil {
		return nil, ErrQRCodeNotFound
	}

	if !qr.IsActive {
		return nil, ErrQRCodeInactive
	}

	now := time.Now()
	if qr.ExpiresAt != nil && qr.ExpiresAt.Before(now) {
		return nil, ErrQRCodeExpired
	}

	deviceInfo, err := json.Marshal(models.DeviceInfo{
		IP:        ipAddress,
		UserAgent: userAgent,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	if err := svc.recorder.Insert(ctx, qr.QRCodeID, ipAddress, userAgent, deviceInfo); err != nil {
		logger.Log.Errorw("failed to record verification", "code", code, "err", err)
		return nil, err
	}

	scanCount, err := svc.counter.IncrementScanCount(ctx, qr.QRCodeID)
	if err != nil {
		logger.Log.Errorw("failed to increment scan count", "code", code, "err", err)
		return nil, err
	}

	svc.publishScanEvent(ctx, models.ScanEvent{
		EventID:    uuid.NewString(),
		QRCodeID:   qr.QRCodeID.String(),
		Code:       qr.Code,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		VerifiedAt: now.Unix(),
	})

	return &VerificationResult{
		ID:          qr.QRCodeID,
		Code:        qr.Code,
		Title:       qr.Title,
		Description: qr.Description,
		Data:        parsePayload(qr.Data),
		CreatedAt:   qr.CreatedAt,
		ScanCount:   scanCount,
	}, nil
}
