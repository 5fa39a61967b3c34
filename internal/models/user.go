package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role issued by registration.
const RoleAdmin = "admin"

// UserDB is the users table row.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
