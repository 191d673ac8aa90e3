package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
	"github.com/govportal/citizen_services_backend/internal/platform/config"
	"github.com/govportal/citizen_services_backend/internal/utils"
)

// authService authenticates citizens and administrators and issues JWTs.
type authService struct {
	cfg       *config.Config
	userRepo  portsrepo.UserRepository
	adminRepo portsrepo.AdminRepository
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, adminRepo portsrepo.AdminRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:       cfg,
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

// RegisterUser creates a new citizen account with a hashed password.
func (s *authService) RegisterUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password during signup", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to register user", err)
	}

	user := domain.User{
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	created, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(409, "email is already registered", apperrors.ErrConflict)
		}
		logger.Error("Failed to save user in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Citizen account registered", slog.Int64("user_id", created.UserID))
	return created, nil
}

// AuthenticateUser verifies citizen credentials and returns a signed token.
func (s *authService) AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid email or password", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to find user by email during login", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Password mismatch on citizen login", slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewAppError(401, "invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.Email, user.UserID, utils.RoleCitizen, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token for citizen", slog.String("error", err.Error()), slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewAppError(500, "failed to generate token", err)
	}

	logger.Info("Citizen logged in", slog.Int64("user_id", user.UserID))
	return &dto.AuthResponse{
		Token:  token,
		UserID: user.UserID,
		Email:  user.Email,
	}, nil
}

// AuthenticateAdmin verifies admin credentials and returns a signed token.
func (s *authService) AuthenticateAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	admin, err := s.adminRepo.FindAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid username or password", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to find admin by username during login", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		logger.Warn("Password mismatch on admin login", slog.Int64("admin_id", admin.AdminID))
		return nil, apperrors.NewAppError(401, "invalid username or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(admin.Username, admin.AdminID, utils.RoleAdmin, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token for admin", slog.String("error", err.Error()), slog.Int64("admin_id", admin.AdminID))
		return nil, apperrors.NewAppError(500, "failed to generate token", err)
	}

	logger.Info("Admin logged in", slog.Int64("admin_id", admin.AdminID))
	return &dto.AuthResponse{
		Token:    token,
		AdminID:  admin.AdminID,
		Username: admin.Username,
	}, nil
}
