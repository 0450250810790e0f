package absences

import "errors"

var (
	// ErrAbsenceNotFound is returned when the absence request does not exist
	ErrAbsenceNotFound = errors.New("absence request not found")

	// ErrAlreadyReviewed is returned when reviewing a request twice
	ErrAlreadyReviewed = errors.New("absence request already reviewed")

	// ErrNotPending is returned when cancelling a request that left the pending state
	ErrNotPending = errors.New("absence request is not pending")

	// ErrAccessDenied is returned when a staff member touches another groomer's request
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDecision is returned for review decisions other than approve/reject
	ErrInvalidDecision = errors.New("invalid review decision")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("internal error")
)
