package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// ProfileRepository persists citizen profiles. Uniqueness of the user link and
// of the NID number is enforced by the storage layer.
type ProfileRepository interface {
	// SaveProfile inserts a new profile and returns it with the assigned id.
	// Returns apperrors.ErrConflict for duplicate NID or duplicate user link.
	SaveProfile(ctx context.Context, profile domain.CitizenProfile) (*domain.CitizenProfile, error)
	FindProfileByUserID(ctx context.Context, userID int64) (*domain.CitizenProfile, error)
}
