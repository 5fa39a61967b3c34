package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupVerificationPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'admin',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS qr_codes (
		qr_code_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(64) NOT NULL UNIQUE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		data TEXT NOT NULL DEFAULT '',
		qr_image TEXT NOT NULL DEFAULT '',
		created_by UUID NOT NULL REFERENCES users(user_id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		expires_at TIMESTAMP,
		scan_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS verifications (
		verification_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		qr_code_id UUID NOT NULL REFERENCES qr_codes(qr_code_id) ON DELETE CASCADE,
		ip_address VARCHAR(45) NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		device_info JSONB,
		verified_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedVerification(t *testing.T, db *sqlx.DB, qrCodeID uuid.UUID, ip string, verifiedAt time.Time) {
	t.Helper()

	deviceInfo := fmt.Sprintf(`{"ip":%q}`, ip)
	_, err := db.Exec(`
		INSERT INTO verifications (qr_code_id, ip_address, user_agent, device_info, verified_at)
		VALUES ($1, $2, 'test-agent', $3::jsonb, $4)
	`, qrCodeID, ip, deviceInfo, verifiedAt)
	assert.NoError(t, err)
}

func TestVerificationWriteRepository_Insert(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	repo := NewVerificationWriteRepository(db, nil)
	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)

	err := repo.Insert(ctx, qrID, "10.0.0.1", "Mozilla/5.0", []byte(`{"ip":"10.0.0.1","device":"Mobile"}`))
	assert.NoError(t, err)

	read := NewVerificationReadRepository(db)
	rows, err := read.ListByQRCodeID(ctx, qrID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, qrID, rows[0].QRCodeID)
	assert.Equal(t, "10.0.0.1", rows[0].IPAddress)
	assert.Equal(t, "Mozilla/5.0", rows[0].UserAgent)
	assert.JSONEq(t, `{"ip":"10.0.0.1","device":"Mobile"}`, string(rows[0].DeviceInfo))
	assert.False(t, rows[0].VerifiedAt.IsZero())

	t.Run("unknown qr code", func(t *testing.T) {
		err := repo.Insert(ctx, uuid.New(), "10.0.0.2", "agent", nil)
		assert.Error(t, err)
	})
}

func TestVerificationReadRepository_ListByQRCodeID(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	repo := NewVerificationReadRepository(db)
	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)
	otherID := seedQRCode(t, db, userID, "def67890", "Other", true, nil, 0)

	now := time.Now().UTC().Truncate(time.Second)
	seedVerification(t, db, qrID, "10.0.0.1", now.Add(-2*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.2", now.Add(-time.Hour))
	seedVerification(t, db, otherID, "10.0.0.3", now)

	rows, err := repo.ListByQRCodeID(ctx, qrID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "10.0.0.2", rows[0].IPAddress)
	assert.Equal(t, "10.0.0.1", rows[1].IPAddress)

	t.Run("no rows", func(t *testing.T) {
		rows, err := repo.ListByQRCodeID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestVerificationReadRepository_TimestampsSince(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	repo := NewVerificationReadRepository(db)
	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)

	now := time.Now().UTC().Truncate(time.Second)
	seedVerification(t, db, qrID, "10.0.0.1", now.Add(-72*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.2", now.Add(-2*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.3", now.Add(-time.Hour))

	stamps, err := repo.TimestampsSince(ctx, now.Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, stamps, 2)
	assert.True(t, stamps[0].Before(stamps[1]))
}

func TestVerificationReadRepository_ListSince(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	repo := NewVerificationReadRepository(db)
	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)

	now := time.Now().UTC().Truncate(time.Second)
	seedVerification(t, db, qrID, "10.0.0.1", now.Add(-3*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.2", now.Add(-2*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.3", now.Add(-time.Hour))

	t.Run("joins parent code fields", func(t *testing.T) {
		rows, err := repo.ListSince(ctx, now.Add(-24*time.Hour), 0)
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, "10.0.0.3", rows[0].IPAddress)
		assert.Equal(t, "abc12345", rows[0].Code)
		assert.Equal(t, "Poster", rows[0].Title)
		assert.Equal(t, "text", rows[0].PayloadType)
	})

	t.Run("limit", func(t *testing.T) {
		rows, err := repo.ListSince(ctx, now.Add(-24*time.Hour), 2)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "10.0.0.3", rows[0].IPAddress)
	})

	t.Run("since excludes older rows", func(t *testing.T) {
		rows, err := repo.ListSince(ctx, now.Add(-90*time.Minute), 0)
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestVerificationReadRepository_CountSince(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	repo := NewVerificationReadRepository(db)
	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)

	now := time.Now().UTC().Truncate(time.Second)
	seedVerification(t, db, qrID, "10.0.0.1", now.Add(-72*time.Hour))
	seedVerification(t, db, qrID, "10.0.0.2", now.Add(-time.Hour))

	count, err := repo.CountSince(ctx, now.Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestVerificationCascadeDelete(t *testing.T) {
	db, teardown := setupVerificationPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedQRCodeUser(t, db, "alice")
	qrID := seedQRCode(t, db, userID, "abc12345", "Poster", true, nil, 0)
	seedVerification(t, db, qrID, "10.0.0.1", time.Now().UTC())

	deleted, err := NewQRCodeWriteRepository(db, nil).Delete(ctx, qrID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	rows, err := NewVerificationReadRepository(db).ListByQRCodeID(ctx, qrID)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
