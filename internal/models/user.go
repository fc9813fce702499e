package models

import (
	"database/sql"
	"time"
)

// User is the persistence model for the users table.
type User struct {
	UserID          string         `db:"user_id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	PasswordHash    sql.NullString `db:"password_hash"`
	ProfileImageURL sql.NullString `db:"profile_image_url"`
	AuthProvider    string         `db:"auth_provider"`
	ProviderUserID  sql.NullString `db:"provider_user_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
