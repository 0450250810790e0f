package domain

import "time"

// AbsenceStatus represents the review state of a staff absence request
type AbsenceStatus string

const (
	AbsencePending          AbsenceStatus = "pending"
	AbsenceApproved         AbsenceStatus = "approved"
	AbsenceRejected         AbsenceStatus = "rejected"
	AbsenceCancelledByStaff AbsenceStatus = "cancelledByStaff"
)

// StaffAbsence represents a groomer's day-off request
type StaffAbsence struct {
	ID        string
	GroomerID string
	StaffID   string
	StaffName string

	Date   time.Time
	Reason string

	ProofName *string
	ProofURL  *string

	Status     AbsenceStatus
	AdminNote  *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReducesCapacity returns true if the absence takes the groomer out of the
// day's roster. Requests count from the moment they are filed; only a
// rejection or a staff cancellation returns the groomer to the roster.
func (a *StaffAbsence) ReducesCapacity() bool {
	return a.Status != AbsenceRejected && a.Status != AbsenceCancelledByStaff
}

// CanBeReviewed returns true while an admin decision is still possible
func (a *StaffAbsence) CanBeReviewed() bool {
	return a.Status == AbsencePending
}

// CanBeCancelledByStaff returns true while the requester may withdraw it
func (a *StaffAbsence) CanBeCancelledByStaff() bool {
	return a.Status == AbsencePending
}
