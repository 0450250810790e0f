package block_day

import (
	"context"
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
	blackouts map[string]string
}

func (r *fakeBlackoutRepo) Upsert(_ context.Context, date time.Time, reason string) (*domain.CalendarBlackout, error) {
	if r.blackouts == nil {
		r.blackouts = make(map[string]string)
	}
	r.blackouts[date.Format(domain.DateFormat)] = reason
	return &domain.CalendarBlackout{Date: date, Reason: reason}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

func booking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, CustomerID: "cust-1", Date: testDate, Slot: domain.SlotMorning, Status: status}
}

func TestExecute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"b1": booking("b1", domain.StatusPending),
		"b2": booking("b2", domain.StatusConfirmed),
		"b3": booking("b3", domain.StatusConfirmed),
	}}
	history := &fakeHistoryRepo{}
	blackouts := &fakeBlackoutRepo{}
	uc := NewUseCase(repo, history, blackouts, fakeTxManager{}, nopLogger{})

	got, err := uc.Execute(context.Background(), testDate, "Typhoon signal no. 3")
	require.NoError(t, err)

	assert.Equal(t, 3, got.CancelledBookings)
	assert.Equal(t, "Typhoon signal no. 3", blackouts.blackouts["2026-06-12"])

	for _, b := range repo.bookings {
		assert.Equal(t, domain.StatusCancelledByAdmin, b.Status)
		require.NotNil(t, b.CancellationNote)
		assert.Equal(t, "Closed day: Typhoon signal no. 3", *b.CancellationNote)
	}
	assert.Len(t, history.entries, 3)
}

func TestExecute_CompletedBookingsUntouched(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"b1": booking("b1", domain.StatusCompleted),
		"b2": booking("b2", domain.StatusPending),
	}}
	uc := NewUseCase(repo, &fakeHistoryRepo{}, &fakeBlackoutRepo{}, fakeTxManager{}, nopLogger{})

	got, err := uc.Execute(context.Background(), testDate, "Holiday")
	require.NoError(t, err)

	assert.Equal(t, 1, got.CancelledBookings)
	assert.Equal(t, domain.StatusCompleted, repo.bookings["b1"].Status)
}

func TestExecute_RequiresReason(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeHistoryRepo{}, &fakeBlackoutRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testDate, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
