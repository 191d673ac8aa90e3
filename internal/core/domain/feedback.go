package domain

import "time"

// FeedbackType distinguishes complaints from suggestions.
type FeedbackType string

const (
	FeedbackComplaint  FeedbackType = "Complaint"
	FeedbackSuggestion FeedbackType = "Suggestion"
)

// FeedbackStatus is the triage status an admin moves feedback through.
type FeedbackStatus string

const (
	FeedbackNew        FeedbackStatus = "New"
	FeedbackInProgress FeedbackStatus = "In_Progress"
	FeedbackResolved   FeedbackStatus = "Resolved"
)

// Feedback is a citizen-submitted complaint or suggestion. The submitting user
// is optional; anonymous feedback is allowed.
type Feedback struct {
	FeedbackID     int64          `json:"feedbackID"`
	UserID         *int64         `json:"userID,omitempty"`
	AdminID        *int64         `json:"adminID,omitempty"`
	FeedbackType   FeedbackType   `json:"feedbackType"`
	Subject        string         `json:"subject"`
	Message        string         `json:"message"`
	Status         FeedbackStatus `json:"status"`
	SubmissionDate time.Time      `json:"submissionDate"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
