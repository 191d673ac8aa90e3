package mapping

import (
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/models"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToDomainProfile converts a models.CitizenProfile to a domain.CitizenProfile.
func ToDomainProfile(m models.CitizenProfile) domain.CitizenProfile {
	return domain.CitizenProfile{
		ProfileID:        m.ProfileID,
		UserID:           m.UserID,
		Name:             m.Name,
		FathersName:      derefString(m.FathersName),
		MothersName:      derefString(m.MothersName),
		DateOfBirth:      m.DateOfBirth,
		NIDNumber:        m.NIDNumber,
		Gender:           domain.Gender(derefString(m.Gender)),
		Religion:         domain.Religion(derefString(m.Religion)),
		CurrentAddress:   derefString(m.CurrentAddress),
		PermanentAddress: derefString(m.PermanentAddress),
		Profession:       derefString(m.Profession),
	}
}

// ToModelProfile converts a domain.CitizenProfile to a models.CitizenProfile.
func ToModelProfile(d domain.CitizenProfile) models.CitizenProfile {
	return models.CitizenProfile{
		ProfileID:        d.ProfileID,
		UserID:           d.UserID,
		Name:             d.Name,
		FathersName:      optString(d.FathersName),
		MothersName:      optString(d.MothersName),
		DateOfBirth:      d.DateOfBirth,
		NIDNumber:        d.NIDNumber,
		Gender:           optString(string(d.Gender)),
		Religion:         optString(string(d.Religion)),
		CurrentAddress:   optString(d.CurrentAddress),
		PermanentAddress: optString(d.PermanentAddress),
		Profession:       optString(d.Profession),
	}
}
