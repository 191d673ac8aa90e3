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
)

// feedbackService handles citizen feedback submission and admin triage.
type feedbackService struct {
	feedbackRepo portsrepo.FeedbackRepository
	userRepo     portsrepo.UserRepository
}

// NewFeedbackService creates a new feedbackService.
func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepository, userRepo portsrepo.UserRepository) portssvc.FeedbackSvcFacade {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

// SubmitFeedback files a complaint or suggestion. userID may be nil for
// anonymous submissions.
func (s *feedbackService) SubmitFeedback(ctx context.Context, userID *int64, req dto.SubmitFeedbackRequest) (*domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	fb := domain.Feedback{
		UserID:         userID,
		FeedbackType:   domain.FeedbackType(req.FeedbackType),
		Subject:        req.Subject,
		Message:        req.Message,
		Status:         domain.FeedbackNew,
		SubmissionDate: now,
		UpdatedAt:      now,
	}

	created, err := s.feedbackRepo.SaveFeedback(ctx, fb)
	if err != nil {
		logger.Error("Failed to save feedback in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Feedback submitted", slog.Int64("feedback_id", created.FeedbackID), slog.String("type", string(created.FeedbackType)))
	return created, nil
}

// ListAllFeedback returns every feedback entry with the submitter's email
// resolved when the entry is not anonymous.
func (s *feedbackService) ListAllFeedback(ctx context.Context) ([]dto.FeedbackResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.feedbackRepo.FindAllFeedback(ctx)
	if err != nil {
		logger.Error("Failed to list feedback from repository", slog.String("error", err.Error()))
		return nil, err
	}

	// Resolve submitter emails, caching per user to avoid repeated lookups.
	emailsByUser := make(map[int64]string)
	out := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		email := ""
		if uid := entries[i].UserID; uid != nil {
			cached, ok := emailsByUser[*uid]
			if !ok {
				user, err := s.userRepo.FindUserByID(ctx, *uid)
				if err != nil {
					if !errors.Is(err, apperrors.ErrNotFound) {
						logger.Error("Failed to resolve feedback submitter", slog.String("error", err.Error()), slog.Int64("user_id", *uid))
						return nil, err
					}
					// Submitter account was deleted; keep the entry anonymous.
					cached = ""
				} else {
					cached = user.Email
				}
				emailsByUser[*uid] = cached
			}
			email = cached
		}
		out = append(out, dto.ToFeedbackResponse(&entries[i], email))
	}
	return out, nil
}

// UpdateFeedbackStatus moves an entry through triage and records the acting
// admin.
func (s *feedbackService) UpdateFeedbackStatus(ctx context.Context, feedbackID, adminID int64, req dto.UpdateFeedbackStatusRequest) (*domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fb, err := s.feedbackRepo.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find feedback for status update", slog.String("error", err.Error()), slog.Int64("feedback_id", feedbackID))
		}
		return nil, err
	}

	status := domain.FeedbackStatus(req.Status)
	if err := s.feedbackRepo.UpdateFeedbackStatus(ctx, feedbackID, status, adminID); err != nil {
		logger.Error("Failed to update feedback status in repository", slog.String("error", err.Error()), slog.Int64("feedback_id", feedbackID))
		return nil, err
	}

	fb.Status = status
	fb.AdminID = &adminID
	fb.UpdatedAt = time.Now()

	logger.Info("Feedback status updated", slog.Int64("feedback_id", feedbackID), slog.Int64("admin_id", adminID), slog.String("status", req.Status))
	return fb, nil
}
