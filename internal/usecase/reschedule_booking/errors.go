package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrTerminalBooking is returned when the booking already reached a final state
	ErrTerminalBooking = errors.New("reschedule_booking: booking is in a terminal state")

	// ErrDayBlackedOut is returned when the new date is closed
	ErrDayBlackedOut = errors.New("reschedule_booking: day is blacked out")

	// ErrSlotConflict is returned when the assigned groomer already has an
	// active booking in the new window and the caller did not confirm the
	// conflict cancellation
	ErrSlotConflict = errors.New("reschedule_booking: slot conflict")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// SlotConflictError carries the booking that already holds the window so
// the admin UI can show it before asking for confirmation
type SlotConflictError struct {
	Conflicting *domain.Booking
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("reschedule_booking: slot conflict with booking %s", e.Conflicting.Code)
}

// Unwrap makes errors.Is(err, ErrSlotConflict) work
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
