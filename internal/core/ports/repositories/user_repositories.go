package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// UserRepository persists citizen accounts.
type UserRepository interface {
	// SaveUser inserts a new user and returns it with the storage-assigned id.
	// Returns apperrors.ErrConflict when the email is already registered.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AdminRepository looks up administrator accounts. Admins are provisioned out
// of band (seed migration); the portal only authenticates and resolves them.
type AdminRepository interface {
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}
