package domain

import "time"

// Admin represents a portal administrator who reviews applications and feedback.
type Admin struct {
	AdminID      int64     `json:"adminID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
