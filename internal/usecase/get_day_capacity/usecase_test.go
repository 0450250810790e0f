package get_day_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetDateRange(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if !b.Date.Before(start) && !b.Date.After(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeGroomerRepo struct{}

func (fakeGroomerRepo) List(_ context.Context) ([]domain.Groomer, error) {
	return domain.DefaultRoster, nil
}

type fakeAbsenceRepo struct {
	absences []*domain.StaffAbsence
}

func (r *fakeAbsenceRepo) GetDateRange(_ context.Context, start, end time.Time) ([]*domain.StaffAbsence, error) {
	return r.absences, nil
}

type fakeBlackoutRepo struct {
	blackouts []*domain.CalendarBlackout
}

func (r *fakeBlackoutRepo) GetDateRange(_ context.Context, start, end time.Time) ([]*domain.CalendarBlackout, error) {
	return r.blackouts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
)

func gid(s string) *string { return &s }

func TestExecute(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "b1", GroomerID: gid("groomer-sam"), Date: start, Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
	}}
	blackouts := &fakeBlackoutRepo{blackouts: []*domain.CalendarBlackout{
		{Date: end, Reason: "Holiday"},
	}}
	uc := NewUseCase(bookings, fakeGroomerRepo{}, &fakeAbsenceRepo{}, blackouts, nopLogger{})

	got, err := uc.Execute(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got.Days, 3)

	first := got.Days[0]
	assert.Equal(t, "2026-06-01", first.Date)
	assert.Equal(t, len(domain.DefaultRoster), first.AvailableGroomers)
	assert.Equal(t, len(domain.DefaultRoster)*domain.GroomerDailyLimit, first.Capacity)
	assert.Equal(t, 1, first.ActiveBookings)
	assert.Equal(t, "open", first.Status)

	assert.Equal(t, 0, got.Days[1].ActiveBookings)

	last := got.Days[2]
	assert.Equal(t, "closed", last.Status)
	assert.Equal(t, 0, last.Capacity)
	require.NotNil(t, last.BlackoutReason)
	assert.Equal(t, "Holiday", *last.BlackoutReason)
}

func TestExecute_RangeTooWide(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, fakeGroomerRepo{}, &fakeAbsenceRepo{}, &fakeBlackoutRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), start, start.AddDate(0, 0, domain.MaxCapacityRangeDays))
	assert.ErrorIs(t, err, ErrRangeTooWide)
}

func TestExecute_EndBeforeStart(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, fakeGroomerRepo{}, &fakeAbsenceRepo{}, &fakeBlackoutRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), end, start)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
