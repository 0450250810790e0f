package reschedule_booking

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// Request moves a booking to a new date and slot
type Request struct {
	BookingID string
	Date      time.Time
	Slot      string

	// ConfirmConflictCancel lets the reschedule cancel whichever active
	// booking already holds the groomer's new window
	ConfirmConflictCancel bool

	Actor domain.HistoryActor
}

// Response is the rescheduled booking
type Response struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Date   string `json:"date"`
	Slot   string `json:"slot"`
	Status string `json:"status"`

	// CancelledConflict is set when a conflicting booking was cancelled
	// as part of the move
	CancelledConflict *string `json:"cancelledConflict,omitempty"`
}
