package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// profileService manages the citizen's personal-identity record.
type profileService struct {
	profileRepo portsrepo.ProfileRepository
	userRepo    portsrepo.UserRepository
}

// NewProfileService creates a new profileService.
func NewProfileService(profileRepo portsrepo.ProfileRepository, userRepo portsrepo.UserRepository) portssvc.ProfileSvcFacade {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CreateProfile registers the user's personal-identity record. A user has at
// most one profile; the NID number is unique across all profiles.
func (s *profileService) CreateProfile(ctx context.Context, userID int64, req dto.CreateProfileRequest) (*domain.CitizenProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve user for profile creation", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		}
		return nil, err
	}

	profile := domain.CitizenProfile{
		UserID:           userID,
		Name:             req.Name,
		FathersName:      req.FathersName,
		MothersName:      req.MothersName,
		DateOfBirth:      req.DateOfBirth,
		NIDNumber:        req.NIDNumber,
		Gender:           domain.Gender(req.Gender),
		Religion:         domain.Religion(req.Religion),
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		Profession:       req.Profession,
	}

	created, err := s.profileRepo.SaveProfile(ctx, profile)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Duplicate user link or duplicate NID, the repository wraps both.
			return nil, err
		}
		logger.Error("Failed to save profile in repository", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		return nil, err
	}

	logger.Info("Citizen profile created", slog.Int64("user_id", userID), slog.Int64("profile_id", created.ProfileID))
	return created, nil
}

// GetProfileByUserID retrieves the profile belonging to a user.
func (s *profileService) GetProfileByUserID(ctx context.Context, userID int64) (*domain.CitizenProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find profile in repository", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return profile, nil
}
