// Package availability holds the pure scheduling math: day capacity,
// per-slot occupancy and fair groomer assignment. Functions operate on
// snapshots loaded by the caller and never touch storage.
package availability

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// CapacityStatus traffic-light status of a calendar day
type CapacityStatus string

const (
	CapacityOpen    CapacityStatus = "open"
	CapacityFilling CapacityStatus = "filling"
	CapacityFull    CapacityStatus = "full"
	CapacityClosed  CapacityStatus = "closed"
)

// DayCapacity summary of a single day's booking capacity
type DayCapacity struct {
	Date              time.Time
	AvailableGroomers int
	Capacity          int
	ActiveBookings    int
	Remaining         int
	Status            CapacityStatus
	BlackoutReason    *string
}

// ComputeDayCapacity derives the capacity summary for one day. A blackout
// short-circuits to closed with zero capacity. Otherwise each available
// groomer contributes the shared daily limit; a day never drops below one
// available groomer even when the whole roster filed absences.
func ComputeDayCapacity(
	date time.Time,
	roster []domain.Groomer,
	bookings []domain.Booking,
	absences []domain.StaffAbsence,
	blackout *domain.CalendarBlackout,
) DayCapacity {
	if blackout != nil && sameDay(blackout.Date, date) {
		reason := blackout.Reason
		return DayCapacity{
			Date:           date,
			Status:         CapacityClosed,
			BlackoutReason: &reason,
		}
	}

	available := max(len(roster)-absentGroomerCount(date, absences), 1)
	capacity := available * domain.GroomerDailyLimit
	active := activeBookingCount(date, bookings)
	remaining := max(capacity-active, 0)

	status := CapacityFull
	switch {
	case active == 0:
		status = CapacityOpen
	case remaining*2 >= capacity:
		status = CapacityOpen
	case remaining > 0:
		status = CapacityFilling
	}

	return DayCapacity{
		Date:              date,
		AvailableGroomers: available,
		Capacity:          capacity,
		ActiveBookings:    active,
		Remaining:         remaining,
		Status:            status,
	}
}

// absentGroomerCount counts distinct groomers with a capacity-reducing
// absence on the date. Duplicate requests from one groomer reduce
// capacity once.
func absentGroomerCount(date time.Time, absences []domain.StaffAbsence) int {
	seen := make(map[string]struct{})
	for i := range absences {
		a := &absences[i]
		if !sameDay(a.Date, date) || !a.ReducesCapacity() {
			continue
		}
		seen[a.GroomerID] = struct{}{}
	}
	return len(seen)
}

func activeBookingCount(date time.Time, bookings []domain.Booking) int {
	n := 0
	for i := range bookings {
		if sameDay(bookings[i].Date, date) && bookings[i].IsActive() {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
