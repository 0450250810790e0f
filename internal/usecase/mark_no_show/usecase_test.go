package mark_no_show

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
	"github.com/bestbuddies/grooming-service/internal/service/customers/models"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
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

type fakeWarningService struct {
	warnings map[string][]string
	sawTx    bool
}

func (s *fakeWarningService) IncrementWarning(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error) {
	s.sawTx = dbmetrics.IsInTransaction(ctx)
	if s.warnings == nil {
		s.warnings = make(map[string][]string)
	}
	s.warnings[userID] = append(s.warnings[userID], reason)
	return &models.WarningInfoResponse{UserID: userID, WarningCount: len(s.warnings[userID])}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithExecutor(ctx, stubExecutor{}))
}

type stubExecutor struct{}

func (stubExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"b1": {
			ID:         "b1",
			Code:       "BB-AAA110001",
			CustomerID: "cust-1",
			Date:       time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Slot:       domain.SlotMorning,
			Status:     domain.StatusConfirmed,
		},
	}}
	history := &fakeHistoryRepo{}
	warnings := &fakeWarningService{}
	uc := NewUseCase(repo, history, warnings, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), "b1")
	require.NoError(t, err)

	stored := repo.bookings["b1"]
	assert.Equal(t, domain.StatusCancelledByAdmin, stored.Status)
	require.NotNil(t, stored.CancellationNote)
	assert.Equal(t, "Marked as no-show by admin", *stored.CancellationNote)

	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionNoShow, history.entries[0].Action)

	require.Len(t, warnings.warnings["cust-1"], 1)
	assert.Equal(t, "No-show on 2026-05-12 at 9am-12pm", warnings.warnings["cust-1"][0])
	// the warning is written under the same transaction as the cancellation
	assert.True(t, warnings.sawTx)
}

func TestExecute_InactiveBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"b1": {ID: "b1", CustomerID: "cust-1", Status: domain.StatusCompleted},
	}}
	warnings := &fakeWarningService{}
	uc := NewUseCase(repo, &fakeHistoryRepo{}, warnings, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, warnings.warnings)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{bookings: map[string]*domain.Booking{}},
		&fakeHistoryRepo{}, &fakeWarningService{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), "b404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
