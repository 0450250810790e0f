package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/ptr"
)

func TestSlotFree(t *testing.T) {
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		{ID: "c1", GroomerID: ptr.Ptr("groomer-jom"), Date: testDay, Slot: domain.SlotMorning, Status: domain.StatusCancelledByAdmin},
	}

	assert.False(t, SlotFree("groomer-sam", testDay, domain.SlotMorning, bookings, nil))
	assert.True(t, SlotFree("groomer-sam", testDay, domain.SlotAfternoon, bookings, nil))
	// cancelled bookings release the window
	assert.True(t, SlotFree("groomer-jom", testDay, domain.SlotMorning, bookings, nil))
	assert.False(t, SlotFree("", testDay, domain.SlotMorning, bookings, nil))
}

func TestSlotFree_BlackoutClosesEverything(t *testing.T) {
	blackout := &domain.CalendarBlackout{Date: testDay, Reason: "Holiday"}

	assert.False(t, SlotFree("groomer-sam", testDay, domain.SlotMorning, nil, blackout))

	nextDay := testDay.AddDate(0, 0, 1)
	assert.True(t, SlotFree("groomer-sam", nextDay, domain.SlotMorning, nil, blackout))
}

func TestActiveGroomersOn(t *testing.T) {
	absences := []domain.StaffAbsence{
		{GroomerID: "groomer-jom", Date: testDay, Status: domain.AbsencePending},
		{GroomerID: "groomer-ejay", Date: testDay, Status: domain.AbsenceCancelledByStaff},
	}

	active := ActiveGroomersOn(testDay, domain.DefaultRoster, absences, nil)

	require.Len(t, active, 4)
	// roster order is preserved
	assert.Equal(t, "groomer-sam", active[0].ID)
	assert.Equal(t, "groomer-botchoy", active[1].ID)
	assert.Equal(t, "groomer-jinold", active[2].ID)
	assert.Equal(t, "groomer-ejay", active[3].ID)
}

func TestActiveGroomersOn_Blackout(t *testing.T) {
	blackout := &domain.CalendarBlackout{Date: testDay, Reason: "Holiday"}

	assert.Empty(t, ActiveGroomersOn(testDay, domain.DefaultRoster, nil, blackout))
}

func TestGroomerHasCapacity(t *testing.T) {
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		activeBooking("groomer-sam", domain.SlotAfternoon),
		activeBooking("groomer-sam", domain.SlotEvening),
		activeBooking("groomer-jom", domain.SlotMorning),
	}

	assert.False(t, GroomerHasCapacity("groomer-sam", testDay, domain.DefaultRoster, bookings))
	assert.True(t, GroomerHasCapacity("groomer-jom", testDay, domain.DefaultRoster, bookings))
	assert.False(t, GroomerHasCapacity("unknown", testDay, domain.DefaultRoster, bookings))
}

func TestGroomerHasCapacity_CustomLimit(t *testing.T) {
	roster := []domain.Groomer{{ID: "g1", Name: "Trainee", MaxDailyBookings: 1}}
	bookings := []domain.Booking{activeBooking("g1", domain.SlotMorning)}

	assert.False(t, GroomerHasCapacity("g1", testDay, roster, bookings))
	assert.True(t, GroomerHasCapacity("g1", testDay, roster, nil))
}

func TestAssignFairGroomer_PicksLeastLoaded(t *testing.T) {
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		activeBooking("groomer-jom", domain.SlotMorning),
	}

	got := AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, bookings, nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, "groomer-botchoy", got.ID)
}

func TestAssignFairGroomer_TieBreaksByRosterOrder(t *testing.T) {
	got := AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, nil, nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, "groomer-sam", got.ID)
}

func TestAssignFairGroomer_SkipsAbsentAndExhausted(t *testing.T) {
	absences := []domain.StaffAbsence{
		{GroomerID: "groomer-sam", Date: testDay, Status: domain.AbsenceApproved},
	}
	// jom is at the daily limit
	bookings := []domain.Booking{
		activeBooking("groomer-jom", domain.SlotMorning),
		activeBooking("groomer-jom", domain.SlotAfternoon),
		activeBooking("groomer-jom", domain.SlotEvening),
	}

	got := AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, bookings, absences, nil)

	require.NotNil(t, got)
	assert.Equal(t, "groomer-botchoy", got.ID)
}

func TestAssignFairGroomer_SkipsOccupiedWindow(t *testing.T) {
	// sam already holds the morning window; even though he carries the
	// lowest daily load he must not get a second morning booking
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		activeBooking("groomer-jom", domain.SlotAfternoon),
		activeBooking("groomer-jom", domain.SlotEvening),
	}

	got := AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, bookings, nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, "groomer-botchoy", got.ID)
}

func TestAssignFairGroomer_EveryWindowTaken(t *testing.T) {
	var bookings []domain.Booking
	for _, g := range domain.DefaultRoster {
		bookings = append(bookings, activeBooking(g.ID, domain.SlotMorning))
	}

	// everyone still has daily capacity, but nobody has the window open
	assert.Nil(t, AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, bookings, nil, nil))
}

func TestAssignFairGroomer_NobodyAvailable(t *testing.T) {
	assert.Nil(t, AssignFairGroomer(testDay, domain.SlotMorning, nil, nil, nil, nil))

	blackout := &domain.CalendarBlackout{Date: testDay, Reason: "Holiday"}
	assert.Nil(t, AssignFairGroomer(testDay, domain.SlotMorning, domain.DefaultRoster, nil, nil, blackout))
}

func TestFreeGroomersForSlot(t *testing.T) {
	bookings := []domain.Booking{
		activeBooking("groomer-sam", domain.SlotMorning),
		activeBooking("groomer-jom", domain.SlotMorning),
	}
	absences := []domain.StaffAbsence{
		{GroomerID: "groomer-ejay", Date: testDay, Status: domain.AbsenceApproved},
	}

	free := FreeGroomersForSlot(testDay, domain.SlotMorning, domain.DefaultRoster, bookings, absences, nil)

	require.Len(t, free, 2)
	assert.Equal(t, "groomer-botchoy", free[0].ID)
	assert.Equal(t, "groomer-jinold", free[1].ID)

	// a different window is not blocked by morning bookings
	free = FreeGroomersForSlot(testDay, domain.SlotAfternoon, domain.DefaultRoster, bookings, absences, nil)
	assert.Len(t, free, 4)
}

