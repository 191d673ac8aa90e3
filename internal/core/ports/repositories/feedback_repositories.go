package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// FeedbackRepository persists citizen feedback entries.
type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, fb domain.Feedback) (*domain.Feedback, error)
	FindAllFeedback(ctx context.Context) ([]domain.Feedback, error)
	FindFeedbackByID(ctx context.Context, feedbackID int64) (*domain.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, feedbackID int64, status domain.FeedbackStatus, adminID int64) error
}
