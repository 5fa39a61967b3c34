package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// ErrUniqueViolation is returned when an insert hits a unique constraint,
// e.g. two allocations racing for the same code. Callers retry with a
// fresh code instead of failing the request.
var ErrUniqueViolation = errors.New("unique constraint violation")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const qrCodeColumns = `
	q.qr_code_id, q.code, q.title, q.description, q.data, q.qr_image,
	q.created_by, q.is_active, q.expires_at, q.scan_count,
	q.created_at, q.updated_at
`

const insertedColumns = `
	qr_code_id, code, title, description, data, qr_image,
	created_by, is_active, expires_at, scan_count, created_at, updated_at
`

// QRCodeReadRepository handles qr_codes read operations.
type QRCodeReadRepository struct {
	db *sqlx.DB
}

func NewQRCodeReadRepository(db *sqlx.DB) *QRCodeReadRepository {
	return &QRCodeReadRepository{db: db}
}

// GetByID fetches one qr_codes row with the creator's username.
// Returns nil without error when the id is unknown.
func (r *QRCodeReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QRCodeListItem, error) {
	query := `
		SELECT ` + qrCodeColumns + `, u.username AS created_by_username
		FROM qr_codes q
		JOIN users u ON u.user_id = q.created_by
		WHERE q.qr_code_id = $1
	`

	var qr models.QRCodeListItem
	err := r.db.GetContext(ctx, &qr, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// GetByCode fetches one qr_codes row by its unique code.
// Returns nil without error when the code is unknown.
func (r *QRCodeReadRepository) GetByCode(ctx context.Context, code string) (*models.QRCodeDB, error) {
	query := `
		SELECT ` + qrCodeColumns + `
		FROM qr_codes q
		WHERE q.code = $1
	`

	var qr models.QRCodeDB
	err := r.db.GetContext(ctx, &qr, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// ExistsByCode probes whether a code is already taken. Best-effort only:
// the unique constraint on qr_codes.code is the authoritative guard.
func (r *QRCodeReadRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM qr_codes WHERE code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)

	logger.Log.Infow(
		"query", query,
		"args", []any{code},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns a page of qr_codes matching the filter plus the total count.
// The expired filter compares expires_at against now() only; an expired row
// still counts as expired even when is_active is true.
func (r *QRCodeReadRepository) List(ctx context.Context, filter models.ListFilter) ([]models.QRCodeListItem, int64, error) {
	where := `
		WHERE ($1 = '' OR q.title ILIKE '%' || $1 || '%'
			OR q.description ILIKE '%' || $1 || '%'
			OR q.code ILIKE '%' || $1 || '%')
	`
	switch filter.Status {
	case models.StatusActive:
		where += ` AND q.is_active = TRUE`
	case models.StatusInactive:
		where += ` AND q.is_active = FALSE`
	case models.StatusExpired:
		where += ` AND q.expires_at < NOW()`
	}

	countQuery := `SELECT COUNT(*) FROM qr_codes q ` + where
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, filter.Search); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(countQuery), " "),
			"args", []any{filter.Search},
			"error", err,
		)
		return nil, 0, err
	}

	query := `
		SELECT ` + qrCodeColumns + `, u.username AS created_by_username
		FROM qr_codes q
		JOIN users u ON u.user_id = q.created_by
	` + where + `
		ORDER BY q.created_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (filter.Page - 1) * filter.Limit
	items := make([]models.QRCodeListItem, 0, filter.Limit)
	err := r.db.SelectContext(ctx, &items, query, filter.Search, filter.Limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.Search, filter.Limit, offset},
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// TopByScanCount returns the most-scanned codes, ties broken by
// insertion order.
func (r *QRCodeReadRepository) TopByScanCount(ctx context.Context, limit int) ([]models.TopQRCode, error) {
	const query = `
		SELECT title, scan_count AS scans
		FROM qr_codes
		ORDER BY scan_count DESC, created_at ASC
		LIMIT $1
	`

	var top []struct {
		Title string `db:"title"`
		Scans int64  `db:"scans"`
	}
	err := r.db.SelectContext(ctx, &top, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(top),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	out := make([]models.TopQRCode, 0, len(top))
	for _, t := range top {
		out = append(out, models.TopQRCode{Title: t.Title, Scans: t.Scans})
	}
	return out, nil
}

// Totals returns total codes, active codes, and the sum of scan counters.
// Total scans intentionally sums qr_codes.scan_count rather than counting
// verification rows.
func (r *QRCodeReadRepository) Totals(ctx context.Context) (total, active, totalScans int64, err error) {
	const query = `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_active) AS active,
		       COALESCE(SUM(scan_count), 0) AS total_scans
		FROM qr_codes
	`

	var row struct {
		Total      int64 `db:"total"`
		Active     int64 `db:"active"`
		TotalScans int64 `db:"total_scans"`
	}
	err = r.db.GetContext(ctx, &row, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", row,
		"error", err,
	)

	return row.Total, row.Active, row.TotalScans, err
}

// QRCodeWriteRepository handles qr_codes write operations.
type QRCodeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQRCodeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QRCodeWriteRepository {
	return &QRCodeWriteRepository{db: db, txGetter: txGetter}
}

func (r *QRCodeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert persists a new code. The unique constraint on code is the source
// of truth for uniqueness; a violation surfaces as ErrUniqueViolation so
// the caller can retry with a fresh code.
func (r *QRCodeWriteRepository) Insert(
	ctx context.Context,
	code, title, description, data, qrImage string,
	createdBy uuid.UUID,
	expiresAt *time.Time,
) (*models.QRCodeDB, error) {
	query := `
		INSERT INTO qr_codes
			(qr_code_id, code, title, description, data, qr_image,
			 created_by, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + insertedColumns + `
	`
	args := []any{uuid.New(), code, title, description, data, qrImage, createdBy, expiresAt}

	var qr models.QRCodeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &qr, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code, title, createdBy, expiresAt},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// Update overwrites the mutable fields of a code and bumps updated_at.
// Returns nil without error when the id is unknown.
func (r *QRCodeWriteRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	title, description, data string,
	expiresAt *time.Time,
	isActive bool,
) (*models.QRCodeDB, error) {
	query := `
		UPDATE qr_codes
		SET title = $2,
		    description = $3,
		    data = $4,
		    expires_at = $5,
		    is_active = $6,
		    updated_at = NOW()
		WHERE qr_code_id = $1
		RETURNING ` + insertedColumns + `
	`
	args := []any{id, title, description, data, expiresAt, isActive}

	var qr models.QRCodeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &qr, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, title, isActive},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// Delete removes a code. Child verification rows go with it via the
// ON DELETE CASCADE on verifications.qr_code_id. Returns false when the id
// is unknown.
func (r *QRCodeWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM qr_codes WHERE qr_code_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// IncrementScanCount bumps the counter in a single statement and returns
// the post-increment value. Atomic at the store level, so concurrent scans
// never lose counts.
func (r *QRCodeWriteRepository) IncrementScanCount(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE qr_codes
		SET scan_count = scan_count + 1
		WHERE qr_code_id = $1
		RETURNING scan_count
	`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", count,
		"error", err,
	)

	return count, err
}
