package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
	groomerRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/groomer"
	"github.com/bestbuddies/grooming-service/internal/pricing"
	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// In-memory fakes

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

func (r *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetFeatured(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Featured && b.HasMedia() {
			copied := *b
			out = append(out, &copied)
		}
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

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id string, status domain.BookingStatus, note string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = status
	b.CancellationNote = &note
	b.CancelledAt = &now
	return nil
}

func (r *fakeBookingRepo) Complete(_ context.Context, id string, groomingNotes string, completedAt time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCompleted
	b.GroomingNotes = &groomingNotes
	b.CompletedAt = &completedAt
	return nil
}

func (r *fakeBookingRepo) AssignGroomer(_ context.Context, id, groomerID, groomerName string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.GroomerID = &groomerID
	b.GroomerName = &groomerName
	return nil
}

func (r *fakeBookingRepo) SetMedia(_ context.Context, id string, beforeURL, afterURL *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.BeforeImageURL = beforeURL
	b.AfterImageURL = afterURL
	if beforeURL == nil || afterURL == nil {
		b.Featured = false
	}
	return nil
}

func (r *fakeBookingRepo) SetReview(_ context.Context, id string, rating int, review *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Rating = rating
	b.Review = review
	return nil
}

func (r *fakeBookingRepo) SetFeatured(_ context.Context, id string, featured bool) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Featured = featured
	return nil
}

type fakeHistoryRepo struct {
	entries []*domain.BookingHistoryEntry
}

func (r *fakeHistoryRepo) Append(_ context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error) {
	e.Timestamp = time.Now()
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *fakeHistoryRepo) GetByBookingID(_ context.Context, bookingID string) ([]*domain.BookingHistoryEntry, error) {
	var out []*domain.BookingHistoryEntry
	for _, e := range r.entries {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeGroomerRepo struct {
	groomers map[string]*domain.Groomer
}

func (r *fakeGroomerRepo) GetByID(_ context.Context, id string) (*domain.Groomer, error) {
	g, ok := r.groomers[id]
	if !ok {
		return nil, groomerRepo.ErrGroomerNotFound
	}
	return g, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) List(_ context.Context) ([]domain.Package, error) {
	return pricing.DefaultPackages, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (t fixedTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo, history *fakeHistoryRepo) *Service {
	groomers := &fakeGroomerRepo{groomers: map[string]*domain.Groomer{
		"groomer-sam": {ID: "groomer-sam", Name: "Sam"},
	}}
	return NewService(repo, history, groomers, fakeCatalogRepo{}, fakeTxManager{}, fixedTime{testNow}, nopLogger{})
}

func pendingBooking() *domain.Booking {
	gid, gname := "groomer-sam", "Sam"
	return &domain.Booking{
		ID:          "b1",
		Code:        "BB-TEST10001",
		CustomerID:  "cust-1",
		PackageID:   "full-basic",
		WeightLabel: "5.1 – 8kg",
		GroomerID:   &gid,
		GroomerName: &gname,
		Date:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Slot:        domain.SlotMorning,
		Status:      domain.StatusPending,
	}
}

func adminActor() models.Actor {
	return models.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func customerActor() models.Actor {
	return models.Actor{UserID: "cust-1", Role: domain.RoleCustomer}
}

// Tests

func TestGetByID_CustomerAccessOwnOnly(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	got, err := svc.GetByID(context.Background(), "b1", customerActor())
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = svc.GetByID(context.Background(), "b1", models.Actor{UserID: "cust-2", Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "b1", adminActor())
	assert.NoError(t, err)
}

func TestConfirm(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	err := svc.Confirm(context.Background(), "b1", adminActor())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, repo.bookings["b1"].Status)
	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionConfirmed, history.entries[0].Action)
}

func TestConfirm_RequiresGroomer(t *testing.T) {
	b := pendingBooking()
	b.GroomerID = nil
	b.GroomerName = nil
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Confirm(context.Background(), "b1", adminActor())
	assert.ErrorIs(t, err, ErrGroomerUnassigned)
}

func TestConfirm_OnlyFromPending(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Confirm(context.Background(), "b1", adminActor())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplete(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	repo := newFakeBookingRepo(b)
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	err := svc.Complete(context.Background(), "b1", &models.CompleteRequest{
		Actor:         adminActor(),
		GroomingNotes: "Full trim, no issues",
	})
	require.NoError(t, err)

	stored := repo.bookings["b1"]
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	require.NotNil(t, stored.GroomingNotes)
	assert.Equal(t, "Full trim, no issues", *stored.GroomingNotes)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, testNow, *stored.CompletedAt)
	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionCompleted, history.entries[0].Action)
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Complete(context.Background(), "b1", &models.CompleteRequest{Actor: adminActor()})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_ByAdminDefaultNote(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	err := svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: adminActor()})
	require.NoError(t, err)

	stored := repo.bookings["b1"]
	assert.Equal(t, domain.StatusCancelledByAdmin, stored.Status)
	require.NotNil(t, stored.CancellationNote)
	assert.Equal(t, "Cancelled by admin", *stored.CancellationNote)
}

func TestCancel_ByCustomer(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	err := svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: customerActor()})
	require.NoError(t, err)

	stored := repo.bookings["b1"]
	assert.Equal(t, domain.StatusCancelledByCustomer, stored.Status)
	require.NotNil(t, stored.CancellationNote)
	assert.Equal(t, "Cancelled by customer", *stored.CancellationNote)
	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActorCustomer, history.entries[0].Actor)
}

func TestCancel_CustomerCannotCancelOthers(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Cancel(context.Background(), "b1", &models.CancelRequest{
		Actor: models.Actor{UserID: "cust-2", Role: domain.RoleCustomer},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_NoteTooLong(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Cancel(context.Background(), "b1", &models.CancelRequest{
		Actor: adminActor(),
		Note:  strings.Repeat("x", domain.MaxCancellationNoteLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.StatusPending, repo.bookings["b1"].Status)
}

func TestCancel_TerminalStateRejected(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: adminActor()})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestAssignGroomer(t *testing.T) {
	b := pendingBooking()
	b.GroomerID = nil
	b.GroomerName = nil
	repo := newFakeBookingRepo(b)
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	err := svc.AssignGroomer(context.Background(), "b1", "groomer-sam")
	require.NoError(t, err)

	stored := repo.bookings["b1"]
	require.NotNil(t, stored.GroomerID)
	assert.Equal(t, "groomer-sam", *stored.GroomerID)
	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionGroomerAssigned, history.entries[0].Action)
}

func TestAssignGroomer_UnknownGroomer(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.AssignGroomer(context.Background(), "b1", "groomer-nobody")
	assert.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestUpdatePending_RecomputesCost(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	history := &fakeHistoryRepo{}
	svc := newTestService(repo, history)

	got, err := svc.UpdatePending(context.Background(), "b1", &models.UpdatePendingRequest{
		Actor:  customerActor(),
		AddOns: []string{"toothbrush"},
	})
	require.NoError(t, err)

	assert.Equal(t, 655, got.Cost.Subtotal)
	assert.Equal(t, 555, got.Cost.BalanceOnVisit)
	require.Len(t, history.entries, 1)
	assert.Equal(t, domain.ActionUpdated, history.entries[0].Action)
}

func TestUpdatePending_NotesTooLong(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	notes := strings.Repeat("n", domain.MaxNotesLength+1)
	_, err := svc.UpdatePending(context.Background(), "b1", &models.UpdatePendingRequest{
		Actor: customerActor(),
		Notes: &notes,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePending_OnlyWhilePending(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	_, err := svc.UpdatePending(context.Background(), "b1", &models.UpdatePendingRequest{Actor: customerActor()})
	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestSetReview(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	review := "Wonderful trim!"
	err := svc.SetReview(context.Background(), "b1", &models.SetReviewRequest{
		Actor:  customerActor(),
		Rating: 5,
		Review: &review,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, repo.bookings["b1"].Rating)
}

func TestSetReview_RequiresCompleted(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.SetReview(context.Background(), "b1", &models.SetReviewRequest{
		Actor:  customerActor(),
		Rating: 4,
	})
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestSetReview_TooLong(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	review := strings.Repeat("a", domain.MaxReviewLength+1)
	err := svc.SetReview(context.Background(), "b1", &models.SetReviewRequest{
		Actor:  customerActor(),
		Rating: 5,
		Review: &review,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.bookings["b1"].Rating)
}

func TestSetReview_RatingBounds(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	for _, rating := range []int{0, 6, -1} {
		err := svc.SetReview(context.Background(), "b1", &models.SetReviewRequest{
			Actor:  customerActor(),
			Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestSetFeatured_RequiresBothPhotos(t *testing.T) {
	b := pendingBooking()
	before := "https://media.example/before.jpg"
	b.BeforeImageURL = &before
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.SetFeatured(context.Background(), "b1", true)
	assert.ErrorIs(t, err, ErrMissingMedia)

	after := "https://media.example/after.jpg"
	repo.bookings["b1"].AfterImageURL = &after
	err = svc.SetFeatured(context.Background(), "b1", true)
	assert.NoError(t, err)
	assert.True(t, repo.bookings["b1"].Featured)
}

func TestSetMedia_ClearingDropsFeatured(t *testing.T) {
	b := pendingBooking()
	before := "https://media.example/before.jpg"
	after := "https://media.example/after.jpg"
	b.BeforeImageURL = &before
	b.AfterImageURL = &after
	b.Featured = true
	repo := newFakeBookingRepo(b)
	svc := newTestService(repo, &fakeHistoryRepo{})

	err := svc.SetMedia(context.Background(), "b1", &models.SetMediaRequest{
		Actor:     adminActor(),
		BeforeURL: &before,
		AfterURL:  nil,
	})
	require.NoError(t, err)

	assert.False(t, repo.bookings["b1"].Featured)
}
