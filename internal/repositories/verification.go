package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// VerificationWriteRepository appends scan events. Rows are never updated
// or deleted here; removal happens only via the qr_codes cascade.
type VerificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVerificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VerificationWriteRepository {
	return &VerificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *VerificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert records one scan event with its device snapshot.
func (r *VerificationWriteRepository) Insert(ctx context.Context, qrCodeID uuid.UUID, ipAddress, userAgent string, deviceInfo []byte) error {
	query := `
		INSERT INTO verifications
			(verification_id, qr_code_id, ip_address, user_agent, device_info, verified_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{uuid.New(), qrCodeID, ipAddress, userAgent, deviceInfo}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{qrCodeID, ipAddress},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// VerificationReadRepository handles scan-event read operations.
type VerificationReadRepository struct {
	db *sqlx.DB
}

func NewVerificationReadRepository(db *sqlx.DB) *VerificationReadRepository {
	return &VerificationReadRepository{db: db}
}

// ListByQRCodeID returns all scan events for one code, newest first.
func (r *VerificationReadRepository) ListByQRCodeID(ctx context.Context, qrCodeID uuid.UUID) ([]models.VerificationDB, error) {
	const query = `
		SELECT verification_id, qr_code_id, ip_address, user_agent, device_info, verified_at
		FROM verifications
		WHERE qr_code_id = $1
		ORDER BY verified_at DESC
	`

	rows := make([]models.VerificationDB, 0)
	err := r.db.SelectContext(ctx, &rows, query, qrCodeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{qrCodeID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// TimestampsSince returns the verified_at of every scan at or after since,
// oldest first. Feeds the daily and hourly bucketing.
func (r *VerificationReadRepository) TimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	const query = `
		SELECT verified_at
		FROM verifications
		WHERE verified_at >= $1
		ORDER BY verified_at ASC
	`

	stamps := make([]time.Time, 0)
	err := r.db.SelectContext(ctx, &stamps, query, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{since},
		"result", len(stamps),
		"error", err,
	)

	return stamps, err
}

// ListSince returns scan events at or after since joined with the parent
// code's title, code and payload type, newest first. limit <= 0 means no
// limit.
func (r *VerificationReadRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]models.VerificationWithQRCode, error) {
	query := `
		SELECT v.verification_id, v.qr_code_id, v.ip_address, v.user_agent,
		       v.device_info, v.verified_at,
		       q.code, q.title,
		       COALESCE(q.data::jsonb ->> 'type', '') AS payload_type
		FROM verifications v
		JOIN qr_codes q ON q.qr_code_id = v.qr_code_id
		WHERE v.verified_at >= $1
		ORDER BY v.verified_at DESC
	`
	args := []any{since}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows := make([]models.VerificationWithQRCode, 0)
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// CountSince returns the number of scans at or after since.
func (r *VerificationReadRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM verifications WHERE verified_at >= $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, since)

	logger.Log.Infow(
		"query", query,
		"args", []any{since},
		"result", count,
		"error", err,
	)

	return count, err
}
