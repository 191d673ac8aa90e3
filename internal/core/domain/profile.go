package domain

import "time"

// Gender enumerates the accepted gender values on a citizen profile.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Religion enumerates the accepted religion values on a citizen profile.
type Religion string

const (
	ReligionIslam        Religion = "ISLAM"
	ReligionHinduism     Religion = "HINDUISM"
	ReligionChristianity Religion = "CHRISTIANITY"
	ReligionBuddhism     Religion = "BUDDHISM"
	ReligionOther        Religion = "OTHER"
)

// CitizenProfile is the citizen's registered personal-identity record.
// A user has at most one profile, and a profile is required before any
// application can be submitted. The NID number is globally unique.
type CitizenProfile struct {
	ProfileID        int64      `json:"profileID"`
	UserID           int64      `json:"userID"`
	Name             string     `json:"name"`
	FathersName      string     `json:"fathersName,omitempty"`
	MothersName      string     `json:"mothersName,omitempty"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	NIDNumber        string     `json:"nidNumber"`
	Gender           Gender     `json:"gender,omitempty"`
	Religion         Religion   `json:"religion,omitempty"`
	CurrentAddress   string     `json:"currentAddress,omitempty"`
	PermanentAddress string     `json:"permanentAddress,omitempty"`
	Profession       string     `json:"profession,omitempty"`
}
