package models

import "time"

// Application is the database row shape for an application. The open
// service-specific data map travels as raw JSON bytes between the column and
// the domain object so the registry never interprets its keys.
type Application struct {
	ApplicationID       int64     `db:"application_id"`
	UserID              int64     `db:"user_id"`
	CitizenProfileID    int64     `db:"citizen_profile_id"`
	ServiceID           int64     `db:"service_id"`
	AdminID             *int64    `db:"admin_id"`
	SubmissionDate      time.Time `db:"submission_date"`
	Status              string    `db:"status"`
	PaymentStatus       string    `db:"payment_status"`
	ServiceSpecificData []byte    `db:"service_specific_data"`
}
