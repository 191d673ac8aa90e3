package models

import "time"

// CitizenProfile is the database row shape for a citizen profile.
type CitizenProfile struct {
	ProfileID        int64      `db:"citizen_profile_id"`
	UserID           int64      `db:"user_id"`
	Name             string     `db:"name"`
	FathersName      *string    `db:"fathers_name"`
	MothersName      *string    `db:"mothers_name"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	NIDNumber        string     `db:"nid_number"`
	Gender           *string    `db:"gender"`
	Religion         *string    `db:"religion"`
	CurrentAddress   *string    `db:"current_address"`
	PermanentAddress *string    `db:"permanent_address"`
	Profession       *string    `db:"profession"`
}
