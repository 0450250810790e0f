package reschedule_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if !b.Date.Equal(date) {
			continue
		}
		if !includeInactive && !b.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id string, status domain.BookingStatus, note string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.CancellationNote = &note
	return nil
}

type fakeHistoryRepo struct {
	entries []*domain.BookingHistoryEntry
}

func (r *fakeHistoryRepo) Append(_ context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error) {
	r.entries = append(r.entries, e)
	return e, nil
}

type fakeBlackoutRepo struct {
	blackouts map[string]*domain.CalendarBlackout
}

func (r *fakeBlackoutRepo) GetByDate(_ context.Context, date time.Time) (*domain.CalendarBlackout, error) {
	if r.blackouts == nil {
		return nil, nil
	}
	return r.blackouts[date.Format(domain.DateFormat)], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	oldDate = time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
)

func confirmedBooking(id, code string, date time.Time, slot domain.TimeSlot) *domain.Booking {
	gid, gname := "groomer-sam", "Sam"
	return &domain.Booking{
		ID:          id,
		Code:        code,
		CustomerID:  "cust-1",
		GroomerID:   &gid,
		GroomerName: &gname,
		Date:        date,
		Slot:        slot,
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *fakeBookingRepo, history *fakeHistoryRepo) *UseCase {
	return NewUseCase(repo, history, &fakeBlackoutRepo{}, fakeTxManager{}, nopLogger{})
}

func TestExecute(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning))
	history := &fakeHistoryRepo{}
	uc := newTestUseCase(repo, history)

	got, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		Date:      newDate,
		Slot:      "12pm-3pm",
		Actor:     domain.ActorAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-05-15", got.Date)
	assert.Equal(t, "12pm-3pm", got.Slot)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.CancelledConflict)

	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionRescheduled, history.entries[0].Action)
}

func TestExecute_ConflictWithoutConfirmation(t *testing.T) {
	repo := newFakeBookingRepo(
		confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning),
		confirmedBooking("b2", "BB-BBB220002", newDate, domain.SlotAfternoon),
	)
	uc := newTestUseCase(repo, &fakeHistoryRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		Date:      newDate,
		Slot:      "12pm-3pm",
		Actor:     domain.ActorAdmin,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *SlotConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "b2", conflictErr.Conflicting.ID)

	// Nothing moved
	assert.Equal(t, oldDate, repo.bookings["b1"].Date)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings["b2"].Status)
}

func TestExecute_ConflictWithConfirmation(t *testing.T) {
	repo := newFakeBookingRepo(
		confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning),
		confirmedBooking("b2", "BB-BBB220002", newDate, domain.SlotAfternoon),
	)
	history := &fakeHistoryRepo{}
	uc := newTestUseCase(repo, history)

	got, err := uc.Execute(context.Background(), &Request{
		BookingID:             "b1",
		Date:                  newDate,
		Slot:                  "12pm-3pm",
		ConfirmConflictCancel: true,
		Actor:                 domain.ActorAdmin,
	})
	require.NoError(t, err)

	require.NotNil(t, got.CancelledConflict)
	assert.Equal(t, "BB-BBB220002", *got.CancelledConflict)

	victim := repo.bookings["b2"]
	assert.Equal(t, domain.StatusCancelledByAdmin, victim.Status)
	require.NotNil(t, victim.CancellationNote)
	assert.Equal(t, "Cancelled due to reschedule conflict with booking BB-AAA110001", *victim.CancellationNote)

	require.Len(t, history.entries, 2)
	assert.Equal(t, domain.ActionCancelled, history.entries[0].Action)
	assert.Equal(t, domain.ActionRescheduled, history.entries[1].Action)
}

func TestExecute_DifferentGroomerIsNotAConflict(t *testing.T) {
	other := confirmedBooking("b2", "BB-BBB220002", newDate, domain.SlotAfternoon)
	gid, gname := "groomer-jom", "Jom"
	other.GroomerID = &gid
	other.GroomerName = &gname
	repo := newFakeBookingRepo(confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning), other)
	uc := newTestUseCase(repo, &fakeHistoryRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		Date:      newDate,
		Slot:      "12pm-3pm",
		Actor:     domain.ActorAdmin,
	})
	assert.NoError(t, err)
}

func TestExecute_BlackedOutTarget(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning))
	uc := NewUseCase(repo, &fakeHistoryRepo{}, &fakeBlackoutRepo{blackouts: map[string]*domain.CalendarBlackout{
		newDate.Format(domain.DateFormat): {Date: newDate, Reason: "Holiday"},
	}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		Date:      newDate,
		Slot:      "12pm-3pm",
		Actor:     domain.ActorAdmin,
	})
	assert.ErrorIs(t, err, ErrDayBlackedOut)
}

func TestExecute_TerminalBooking(t *testing.T) {
	b := confirmedBooking("b1", "BB-AAA110001", oldDate, domain.SlotMorning)
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	uc := newTestUseCase(repo, &fakeHistoryRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		Date:      newDate,
		Slot:      "12pm-3pm",
		Actor:     domain.ActorAdmin,
	})
	assert.ErrorIs(t, err, ErrTerminalBooking)
}
