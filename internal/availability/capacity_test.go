package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

var testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func activeBooking(groomerID string, slot domain.TimeSlot) domain.Booking {
	var gid *string
	if groomerID != "" {
		gid = &groomerID
	}
	return domain.Booking{
		ID:        "b-" + groomerID + string(slot),
		GroomerID: gid,
		Date:      testDay,
		Slot:      slot,
		Status:    domain.StatusPending,
	}
}

func TestComputeDayCapacity_EmptyDay(t *testing.T) {
	got := ComputeDayCapacity(testDay, domain.DefaultRoster, nil, nil, nil)

	assert.Equal(t, 5, got.AvailableGroomers)
	assert.Equal(t, 15, got.Capacity)
	assert.Equal(t, 0, got.ActiveBookings)
	assert.Equal(t, 15, got.Remaining)
	assert.Equal(t, CapacityOpen, got.Status)
}

func TestComputeDayCapacity_Blackout(t *testing.T) {
	blackout := &domain.CalendarBlackout{Date: testDay, Reason: "Deep cleaning"}

	got := ComputeDayCapacity(testDay, domain.DefaultRoster, nil, nil, blackout)

	assert.Equal(t, CapacityClosed, got.Status)
	assert.Equal(t, 0, got.Capacity)
	assert.Equal(t, 0, got.Remaining)
	require.NotNil(t, got.BlackoutReason)
	assert.Equal(t, "Deep cleaning", *got.BlackoutReason)
}

func TestComputeDayCapacity_AbsencesReduceCapacity(t *testing.T) {
	absences := []domain.StaffAbsence{
		{GroomerID: "groomer-sam", Date: testDay, Status: domain.AbsencePending},
		{GroomerID: "groomer-jom", Date: testDay, Status: domain.AbsenceApproved},
		// rejected requests do not reduce capacity
		{GroomerID: "groomer-ejay", Date: testDay, Status: domain.AbsenceRejected},
		// duplicate request from the same groomer counts once
		{GroomerID: "groomer-sam", Date: testDay, Status: domain.AbsenceApproved},
	}

	got := ComputeDayCapacity(testDay, domain.DefaultRoster, nil, absences, nil)

	assert.Equal(t, 3, got.AvailableGroomers)
	assert.Equal(t, 9, got.Capacity)
}

func TestComputeDayCapacity_NeverBelowOneGroomer(t *testing.T) {
	var absences []domain.StaffAbsence
	for _, g := range domain.DefaultRoster {
		absences = append(absences, domain.StaffAbsence{
			GroomerID: g.ID, Date: testDay, Status: domain.AbsenceApproved,
		})
	}

	got := ComputeDayCapacity(testDay, domain.DefaultRoster, nil, absences, nil)

	assert.Equal(t, 1, got.AvailableGroomers)
	assert.Equal(t, domain.GroomerDailyLimit, got.Capacity)
}

func TestComputeDayCapacity_StatusThresholds(t *testing.T) {
	roster := domain.DefaultRoster // capacity 15

	makeBookings := func(n int) []domain.Booking {
		bookings := make([]domain.Booking, 0, n)
		for i := 0; i < n; i++ {
			b := activeBooking(roster[i%len(roster)].ID, domain.SlotMorning)
			b.ID = b.ID + string(rune('a'+i))
			bookings = append(bookings, b)
		}
		return bookings
	}

	tests := []struct {
		name     string
		bookings int
		want     CapacityStatus
	}{
		{"no bookings", 0, CapacityOpen},
		{"half full still open", 7, CapacityOpen},
		{"over half full filling", 8, CapacityFilling},
		{"one left filling", 14, CapacityFilling},
		{"at capacity full", 15, CapacityFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDayCapacity(testDay, roster, makeBookings(tt.bookings), nil, nil)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestComputeDayCapacity_CancelledBookingsIgnored(t *testing.T) {
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		{ID: "x1", Date: testDay, Slot: domain.SlotMorning, Status: domain.StatusCancelledByAdmin},
		{ID: "x2", Date: testDay, Slot: domain.SlotAfternoon, Status: domain.StatusCancelledByCustomer},
		{ID: "x3", Date: testDay, Slot: domain.SlotEvening, Status: domain.StatusCancelledLegacy},
	}

	got := ComputeDayCapacity(testDay, domain.DefaultRoster, bookings, nil, nil)

	assert.Equal(t, 1, got.ActiveBookings)
	assert.Equal(t, 14, got.Remaining)
}

func TestComputeDayCapacity_RemainingNeverNegative(t *testing.T) {
	roster := []domain.Groomer{{ID: "g1", Name: "Solo"}}
	var bookings []domain.Booking
	for i := 0; i < 10; i++ {
		b := activeBooking("g1", domain.SlotMorning)
		b.ID = b.ID + string(rune('a'+i))
		bookings = append(bookings, b)
	}

	got := ComputeDayCapacity(testDay, roster, bookings, nil, nil)

	assert.Equal(t, 0, got.Remaining)
	assert.Equal(t, CapacityFull, got.Status)
}
