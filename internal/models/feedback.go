package models

import "time"

// Feedback is the database row shape for a feedback entry.
type Feedback struct {
	FeedbackID     int64     `db:"feedback_id"`
	UserID         *int64    `db:"user_id"`
	AdminID        *int64    `db:"admin_id"`
	FeedbackType   string    `db:"feedback_type"`
	Subject        string    `db:"subject"`
	Message        string    `db:"message"`
	Status         string    `db:"status"`
	SubmissionDate time.Time `db:"submission_date"`
	UpdatedAt      time.Time `db:"updated_at"`
}
