package models

import "time"

// Admin is the database row shape for an administrator account.
type Admin struct {
	AdminID      int64     `db:"admin_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
