package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// ProfileReaderSvc defines read operations for citizen profiles.
type ProfileReaderSvc interface {
	// GetProfileByUserID retrieves the profile belonging to a user.
	GetProfileByUserID(ctx context.Context, userID int64) (*domain.CitizenProfile, error)
}

// ProfileWriterSvc defines write operations for citizen profiles.
type ProfileWriterSvc interface {
	// CreateProfile registers the user's personal-identity record.
	CreateProfile(ctx context.Context, userID int64, req dto.CreateProfileRequest) (*domain.CitizenProfile, error)
}

// ProfileSvcFacade combines all profile service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
