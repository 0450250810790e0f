package absences

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	absenceRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/absence"
	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

type fakeAbsenceRepo struct {
	absences map[string]*domain.StaffAbsence
}

func newFakeAbsenceRepo(absences ...*domain.StaffAbsence) *fakeAbsenceRepo {
	repo := &fakeAbsenceRepo{absences: make(map[string]*domain.StaffAbsence)}
	for _, a := range absences {
		copied := *a
		repo.absences[a.ID] = &copied
	}
	return repo
}

func (r *fakeAbsenceRepo) Create(_ context.Context, a *domain.StaffAbsence) (*domain.StaffAbsence, error) {
	copied := *a
	copied.ID = uuid.NewString()
	copied.CreatedAt = time.Now()
	r.absences[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (r *fakeAbsenceRepo) GetByID(_ context.Context, id string) (*domain.StaffAbsence, error) {
	a, ok := r.absences[id]
	if !ok {
		return nil, absenceRepo.ErrAbsenceNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAbsenceRepo) GetByStaffID(_ context.Context, staffID string) ([]*domain.StaffAbsence, error) {
	var out []*domain.StaffAbsence
	for _, a := range r.absences {
		if a.StaffID == staffID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAbsenceRepo) GetWithStatus(_ context.Context, status *domain.AbsenceStatus) ([]*domain.StaffAbsence, error) {
	var out []*domain.StaffAbsence
	for _, a := range r.absences {
		if status != nil && a.Status != *status {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeAbsenceRepo) Review(_ context.Context, id string, status domain.AbsenceStatus, adminNote *string, reviewedAt time.Time) error {
	a, ok := r.absences[id]
	if !ok {
		return absenceRepo.ErrAbsenceNotFound
	}
	a.Status = status
	a.AdminNote = adminNote
	a.ReviewedAt = &reviewedAt
	return nil
}

func (r *fakeAbsenceRepo) UpdateStatus(_ context.Context, id string, status domain.AbsenceStatus) error {
	a, ok := r.absences[id]
	if !ok {
		return absenceRepo.ErrAbsenceNotFound
	}
	a.Status = status
	return nil
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

var testNow = time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)

func newTestService(repo *fakeAbsenceRepo) *Service {
	return NewService(repo, fakeTxManager{}, fixedTime{testNow}, nopLogger{})
}

func pendingAbsence(id string) *domain.StaffAbsence {
	return &domain.StaffAbsence{
		ID:        id,
		GroomerID: "groomer-sam",
		StaffID:   "staff-1",
		StaffName: "Sam",
		Date:      time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		Reason:    "Dental appointment",
		Status:    domain.AbsencePending,
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeAbsenceRepo()
	svc := newTestService(repo)

	got, err := svc.Create(context.Background(), &models.CreateRequest{
		GroomerID: "groomer-sam",
		StaffID:   "staff-1",
		StaffName: "Sam",
		Date:      time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		Reason:    "Dental appointment",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "2026-04-20", got.Date)
}

func TestReview_Approve(t *testing.T) {
	repo := newFakeAbsenceRepo(pendingAbsence("a1"))
	svc := newTestService(repo)

	note := "Approved, cover arranged"
	got, err := svc.Review(context.Background(), "a1", &models.ReviewRequest{
		Decision:  models.DecisionApprove,
		AdminNote: &note,
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", got.Status)
	require.NotNil(t, got.AdminNote)
	assert.Equal(t, note, *got.AdminNote)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, testNow, *got.ReviewedAt)
}

func TestReview_Reject(t *testing.T) {
	repo := newFakeAbsenceRepo(pendingAbsence("a1"))
	svc := newTestService(repo)

	got, err := svc.Review(context.Background(), "a1", &models.ReviewRequest{Decision: models.DecisionReject})
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
}

func TestReview_OnlyOnce(t *testing.T) {
	a := pendingAbsence("a1")
	a.Status = domain.AbsenceApproved
	repo := newFakeAbsenceRepo(a)
	svc := newTestService(repo)

	_, err := svc.Review(context.Background(), "a1", &models.ReviewRequest{Decision: models.DecisionReject})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReview_InvalidDecision(t *testing.T) {
	repo := newFakeAbsenceRepo(pendingAbsence("a1"))
	svc := newTestService(repo)

	_, err := svc.Review(context.Background(), "a1", &models.ReviewRequest{Decision: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestCancelByStaff(t *testing.T) {
	repo := newFakeAbsenceRepo(pendingAbsence("a1"))
	svc := newTestService(repo)

	got, err := svc.CancelByStaff(context.Background(), "a1", "staff-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelledByStaff", got.Status)
}

func TestCancelByStaff_OwnRequestsOnly(t *testing.T) {
	repo := newFakeAbsenceRepo(pendingAbsence("a1"))
	svc := newTestService(repo)

	_, err := svc.CancelByStaff(context.Background(), "a1", "staff-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancelByStaff_PendingOnly(t *testing.T) {
	a := pendingAbsence("a1")
	a.Status = domain.AbsenceApproved
	repo := newFakeAbsenceRepo(a)
	svc := newTestService(repo)

	_, err := svc.CancelByStaff(context.Background(), "a1", "staff-1")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestList_FilterByStatus(t *testing.T) {
	approved := pendingAbsence("a2")
	approved.Status = domain.AbsenceApproved
	repo := newFakeAbsenceRepo(pendingAbsence("a1"), approved)
	svc := newTestService(repo)

	status := "pending"
	got, err := svc.List(context.Background(), &status)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)

	got, err = svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
}
