package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// CitizenAuthSvc defines signup and authentication for citizen accounts.
type CitizenAuthSvc interface {
	// RegisterUser creates a new citizen account with a hashed password.
	RegisterUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// AuthenticateUser verifies citizen credentials and returns a signed token.
	AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

// AdminAuthSvc defines authentication for administrator accounts.
type AdminAuthSvc interface {
	// AuthenticateAdmin verifies admin credentials and returns a signed token.
	AuthenticateAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AuthResponse, error)
}

// AuthSvcFacade combines all authentication service interfaces.
type AuthSvcFacade interface {
	CitizenAuthSvc
	AdminAuthSvc
}
