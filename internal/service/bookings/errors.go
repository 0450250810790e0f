package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the user may not touch the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is already terminal
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotUpdate is returned when the booking is past customer editing
	ErrCannotUpdate = errors.New("booking can no longer be updated")

	// ErrGroomerUnassigned is returned when confirming a booking without a groomer
	ErrGroomerUnassigned = errors.New("booking has no assigned groomer")

	// ErrInvalidTransition is returned on a disallowed status transition
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotCompleted is returned when reviewing a booking that is not completed
	ErrNotCompleted = errors.New("booking is not completed")

	// ErrInvalidRating is returned when the rating is outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrMissingMedia is returned when featuring a booking without both photos
	ErrMissingMedia = errors.New("featured booking needs before and after photos")

	// ErrGroomerNotFound is returned when the assigned groomer does not exist
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
