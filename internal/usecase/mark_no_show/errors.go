package mark_no_show

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("mark_no_show: booking not found")

	// ErrInvalidState is returned when the booking cannot be marked as a no-show
	ErrInvalidState = errors.New("mark_no_show: booking cannot be marked as no-show")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("mark_no_show: internal error")
)
