package mapping

import (
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/models"
)

// ToDomainFeedback converts a models.Feedback to a domain.Feedback.
func ToDomainFeedback(m models.Feedback) domain.Feedback {
	return domain.Feedback{
		FeedbackID:     m.FeedbackID,
		UserID:         m.UserID,
		AdminID:        m.AdminID,
		FeedbackType:   domain.FeedbackType(m.FeedbackType),
		Subject:        m.Subject,
		Message:        m.Message,
		Status:         domain.FeedbackStatus(m.Status),
		SubmissionDate: m.SubmissionDate,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainFeedbackSlice converts a slice of models.Feedback to domain objects.
func ToDomainFeedbackSlice(ms []models.Feedback) []domain.Feedback {
	ds := make([]domain.Feedback, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFeedback(m)
	}
	return ds
}
