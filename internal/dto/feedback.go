package dto

import (
	"time"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// SubmitFeedbackRequest files a complaint or suggestion.
type SubmitFeedbackRequest struct {
	FeedbackType string `json:"feedbackType" binding:"required,oneof=Complaint Suggestion"`
	Subject      string `json:"subject" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// UpdateFeedbackStatusRequest moves a feedback entry through triage.
type UpdateFeedbackStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=New In_Progress Resolved"`
}

// FeedbackResponse is the API shape of a feedback entry.
type FeedbackResponse struct {
	FeedbackID     int64     `json:"feedbackId"`
	UserEmail      string    `json:"userEmail,omitempty"`
	FeedbackType   string    `json:"feedbackType"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submissionDate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToFeedbackResponse converts a domain.Feedback to its API shape. The
// submitter email is resolved by the service when the entry is not anonymous.
func ToFeedbackResponse(f *domain.Feedback, userEmail string) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:     f.FeedbackID,
		UserEmail:      userEmail,
		FeedbackType:   string(f.FeedbackType),
		Subject:        f.Subject,
		Message:        f.Message,
		Status:         string(f.Status),
		SubmissionDate: f.SubmissionDate,
		UpdatedAt:      f.UpdatedAt,
	}
}
