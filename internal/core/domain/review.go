package domain

import "time"

// ApplicationReviewItem is the admin-facing view of an application. Applicant
// fields are snapshot values looked up from the linked citizen profile at read
// time; they are never stored redundantly on the application row.
type ApplicationReviewItem struct {
	Application
	ServiceName   string     `json:"serviceName"`
	ApplicantName string     `json:"applicantName"`
	FathersName   string     `json:"fathersName,omitempty"`
	MothersName   string     `json:"mothersName,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	NIDNumber     string     `json:"nidNumber"`
	Profession    string     `json:"profession,omitempty"`
}

// ApplicationStats are the dashboard aggregate counts over all applications.
type ApplicationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
