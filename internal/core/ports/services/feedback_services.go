package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// FeedbackWriterSvc defines citizen-facing feedback submission.
type FeedbackWriterSvc interface {
	// SubmitFeedback files a complaint or suggestion. userID may be nil for
	// anonymous submissions.
	SubmitFeedback(ctx context.Context, userID *int64, req dto.SubmitFeedbackRequest) (*domain.Feedback, error)
}

// FeedbackTriageSvc defines the admin triage operations.
type FeedbackTriageSvc interface {
	// ListAllFeedback returns every feedback entry, newest first.
	ListAllFeedback(ctx context.Context) ([]dto.FeedbackResponse, error)

	// UpdateFeedbackStatus moves an entry through triage and records the
	// acting admin.
	UpdateFeedbackStatus(ctx context.Context, feedbackID, adminID int64, req dto.UpdateFeedbackStatusRequest) (*domain.Feedback, error)
}

// FeedbackSvcFacade combines all feedback service interfaces.
type FeedbackSvcFacade interface {
	FeedbackWriterSvc
	FeedbackTriageSvc
}
