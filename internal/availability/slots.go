package availability

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// SlotFree reports whether the groomer has no active booking in the given
// window. A blackout closes every slot of the day.
func SlotFree(
	groomerID string,
	date time.Time,
	slot domain.TimeSlot,
	bookings []domain.Booking,
	blackout *domain.CalendarBlackout,
) bool {
	if groomerID == "" {
		return false
	}
	if blackout != nil && sameDay(blackout.Date, date) {
		return false
	}
	for i := range bookings {
		b := &bookings[i]
		if b.GroomerID == nil || *b.GroomerID != groomerID {
			continue
		}
		if sameDay(b.Date, date) && b.Slot == slot && b.IsActive() {
			return false
		}
	}
	return true
}

// ActiveGroomersOn returns the roster members working the date: not absent
// with a capacity-reducing request, and the day not blacked out. Roster
// order is preserved.
func ActiveGroomersOn(
	date time.Time,
	roster []domain.Groomer,
	absences []domain.StaffAbsence,
	blackout *domain.CalendarBlackout,
) []domain.Groomer {
	if blackout != nil && sameDay(blackout.Date, date) {
		return nil
	}
	absent := make(map[string]struct{})
	for i := range absences {
		a := &absences[i]
		if sameDay(a.Date, date) && a.ReducesCapacity() {
			absent[a.GroomerID] = struct{}{}
		}
	}
	active := make([]domain.Groomer, 0, len(roster))
	for _, g := range roster {
		if _, ok := absent[g.ID]; ok {
			continue
		}
		active = append(active, g)
	}
	return active
}

// GroomerHasCapacity reports whether the groomer is still under their
// daily booking cap on the date.
func GroomerHasCapacity(
	groomerID string,
	date time.Time,
	roster []domain.Groomer,
	bookings []domain.Booking,
) bool {
	if groomerID == "" {
		return false
	}
	limit := domain.GroomerDailyLimit
	found := false
	for i := range roster {
		if roster[i].ID == groomerID {
			limit = roster[i].DailyLimit()
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return groomerDailyLoad(groomerID, date, bookings) < limit
}

// AssignFairGroomer picks the least-loaded working groomer whose requested
// window is still free, ties resolved by roster order. Returns nil when
// nobody has the window open.
func AssignFairGroomer(
	date time.Time,
	slot domain.TimeSlot,
	roster []domain.Groomer,
	bookings []domain.Booking,
	absences []domain.StaffAbsence,
	blackout *domain.CalendarBlackout,
) *domain.Groomer {
	active := ActiveGroomersOn(date, roster, absences, blackout)

	var best *domain.Groomer
	bestCount := 0
	for i := range active {
		g := &active[i]
		if !GroomerHasCapacity(g.ID, date, roster, bookings) {
			continue
		}
		if slotLoad(g.ID, date, slot, bookings) > 0 {
			continue
		}
		count := groomerDailyLoad(g.ID, date, bookings)
		if best == nil || count < bestCount {
			best = g
			bestCount = count
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

// FreeGroomersForSlot returns the working groomers with the window still
// open, used for per-slot availability counts in the booking wizard.
func FreeGroomersForSlot(
	date time.Time,
	slot domain.TimeSlot,
	roster []domain.Groomer,
	bookings []domain.Booking,
	absences []domain.StaffAbsence,
	blackout *domain.CalendarBlackout,
) []domain.Groomer {
	active := ActiveGroomersOn(date, roster, absences, blackout)
	free := make([]domain.Groomer, 0, len(active))
	for _, g := range active {
		if SlotFree(g.ID, date, slot, bookings, blackout) {
			free = append(free, g)
		}
	}
	return free
}

func groomerDailyLoad(groomerID string, date time.Time, bookings []domain.Booking) int {
	n := 0
	for i := range bookings {
		b := &bookings[i]
		if b.GroomerID != nil && *b.GroomerID == groomerID && sameDay(b.Date, date) && b.IsActive() {
			n++
		}
	}
	return n
}

func slotLoad(groomerID string, date time.Time, slot domain.TimeSlot, bookings []domain.Booking) int {
	n := 0
	for i := range bookings {
		b := &bookings[i]
		if b.GroomerID != nil && *b.GroomerID == groomerID && sameDay(b.Date, date) && b.Slot == slot && b.IsActive() {
			n++
		}
	}
	return n
}
