package dto

import (
	"time"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// SubmitApplicationRequest starts a new application for a catalog service.
// ServiceSpecificData is an open map the registry stores verbatim.
type SubmitApplicationRequest struct {
	ServiceID           int64          `json:"serviceId" binding:"required"`
	ServiceSpecificData map[string]any `json:"serviceSpecificData"`
}

// ApplicationResponse is the citizen-facing shape of an application.
// Enumerated fields serialize as their symbolic names.
type ApplicationResponse struct {
	ApplicationID       int64          `json:"applicationId"`
	ServiceID           int64          `json:"serviceId"`
	SubmissionDate      string         `json:"submissionDate"`
	Status              string         `json:"status"`
	PaymentStatus       string         `json:"paymentStatus"`
	ServiceSpecificData map[string]any `json:"serviceSpecificData"`
}

// ApplicationListItem is the summary row in "my applications".
type ApplicationListItem struct {
	ApplicationID       int64          `json:"applicationId"`
	ServiceName         string         `json:"serviceName"`
	SubmissionDate      string         `json:"submissionDate"`
	Status              string         `json:"status"`
	PaymentStatus       string         `json:"paymentStatus"`
	ServiceSpecificData map[string]any `json:"serviceSpecificData"`
}

// AdminApplicationListItem is the admin review row, with the applicant's
// profile snapshot denormalized at read time.
type AdminApplicationListItem struct {
	ApplicationID       int64          `json:"applicationId"`
	UserID              int64          `json:"userId"`
	ServiceName         string         `json:"serviceName"`
	SubmissionDate      string         `json:"submissionDate"`
	Status              string         `json:"status"`
	PaymentStatus       string         `json:"paymentStatus"`
	ServiceSpecificData map[string]any `json:"serviceSpecificData"`
	ApplicantName       string         `json:"applicantName"`
	FathersName         string         `json:"fathersName,omitempty"`
	MothersName         string         `json:"mothersName,omitempty"`
	DateOfBirth         *time.Time     `json:"dateOfBirth,omitempty"`
	NIDNumber           string         `json:"nidNumber"`
	Profession          string         `json:"profession,omitempty"`
}

// submissionDateLayout keeps the submission date as a calendar date on the wire.
const submissionDateLayout = "2006-01-02"

// ToApplicationResponse converts a domain.Application to its API shape.
func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	data := a.ServiceSpecificData
	if data == nil {
		data = map[string]any{}
	}
	return ApplicationResponse{
		ApplicationID:       a.ApplicationID,
		ServiceID:           a.ServiceID,
		SubmissionDate:      a.SubmissionDate.Format(submissionDateLayout),
		Status:              string(a.Status),
		PaymentStatus:       string(a.PaymentStatus),
		ServiceSpecificData: data,
	}
}

// ToAdminApplicationListItem converts an admin review view row to its API shape.
func ToAdminApplicationListItem(item *domain.ApplicationReviewItem) AdminApplicationListItem {
	data := item.ServiceSpecificData
	if data == nil {
		data = map[string]any{}
	}
	return AdminApplicationListItem{
		ApplicationID:       item.ApplicationID,
		UserID:              item.UserID,
		ServiceName:         item.ServiceName,
		SubmissionDate:      item.SubmissionDate.Format(submissionDateLayout),
		Status:              string(item.Status),
		PaymentStatus:       string(item.PaymentStatus),
		ServiceSpecificData: data,
		ApplicantName:       item.ApplicantName,
		FathersName:         item.FathersName,
		MothersName:         item.MothersName,
		DateOfBirth:         item.DateOfBirth,
		NIDNumber:           item.NIDNumber,
		Profession:          item.Profession,
	}
}

// StatsResponse is the admin dashboard aggregate.
type StatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
