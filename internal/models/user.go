package models

import "time"

// User is the database row shape for a citizen account.
type User struct {
	UserID       int64      `db:"user_id"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
