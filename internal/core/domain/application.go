package domain

import "time"

// ApplicationStatus is the review lifecycle status of an application.
// APPROVED and REJECTED are terminal; there is no transition out of them.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transition.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// PaymentState is the payment side of the application lifecycle.
// Once COMPLETED it never reverts.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateCompleted PaymentState = "COMPLETED"
)

// Application is a citizen's request for a government service. It references
// the owning user, the profile snapshot used at submission time, the requested
// service and, once reviewed, the deciding admin. ServiceSpecificData is an
// open key/value map the registry stores and returns verbatim.
type Application struct {
	ApplicationID       int64             `json:"applicationID"`
	UserID              int64             `json:"userID"`
	CitizenProfileID    int64             `json:"citizenProfileID"`
	ServiceID           int64             `json:"serviceID"`
	AdminID             *int64            `json:"adminID,omitempty"`
	SubmissionDate      time.Time         `json:"submissionDate"`
	Status              ApplicationStatus `json:"status"`
	PaymentStatus       PaymentState      `json:"paymentStatus"`
	ServiceSpecificData map[string]any    `json:"serviceSpecificData"`
}

// CanApprove reports whether the approval precondition holds: approval is
// forbidden while the payment is still pending.
func (a *Application) CanApprove() bool {
	return a.PaymentStatus == PaymentStateCompleted
}
