package dto

import (
	"time"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// CreateProfileRequest carries the citizen's personal-identity record.
type CreateProfileRequest struct {
	Name             string     `json:"name" binding:"required"`
	FathersName      string     `json:"fathersName"`
	MothersName      string     `json:"mothersName"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	NIDNumber        string     `json:"nidNumber" binding:"required"`
	Gender           string     `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Religion         string     `json:"religion" binding:"omitempty,oneof=ISLAM HINDUISM CHRISTIANITY BUDDHISM OTHER"`
	CurrentAddress   string     `json:"currentAddress"`
	PermanentAddress string     `json:"permanentAddress"`
	Profession       string     `json:"profession"`
}

// ProfileResponse is the API shape of a citizen profile.
type ProfileResponse struct {
	ProfileID        int64      `json:"profileId"`
	UserID           int64      `json:"userId"`
	Name             string     `json:"name"`
	FathersName      string     `json:"fathersName,omitempty"`
	MothersName      string     `json:"mothersName,omitempty"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	NIDNumber        string     `json:"nidNumber"`
	Gender           string     `json:"gender,omitempty"`
	Religion         string     `json:"religion,omitempty"`
	CurrentAddress   string     `json:"currentAddress,omitempty"`
	PermanentAddress string     `json:"permanentAddress,omitempty"`
	Profession       string     `json:"profession,omitempty"`
}

// ToProfileResponse converts a domain.CitizenProfile to its API shape.
func ToProfileResponse(p *domain.CitizenProfile) ProfileResponse {
	return ProfileResponse{
		ProfileID:        p.ProfileID,
		UserID:           p.UserID,
		Name:             p.Name,
		FathersName:      p.FathersName,
		MothersName:      p.MothersName,
		DateOfBirth:      p.DateOfBirth,
		NIDNumber:        p.NIDNumber,
		Gender:           string(p.Gender),
		Religion:         string(p.Religion),
		CurrentAddress:   p.CurrentAddress,
		PermanentAddress: p.PermanentAddress,
		Profession:       p.Profession,
	}
}
