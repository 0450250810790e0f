package groomers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	groomerRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/groomer"
)

type fakeGroomerRepo struct {
	groomers []domain.Groomer
}

func newFakeGroomerRepo() *fakeGroomerRepo {
	return &fakeGroomerRepo{groomers: append([]domain.Groomer(nil), domain.DefaultRoster...)}
}

func (r *fakeGroomerRepo) List(_ context.Context) ([]domain.Groomer, error) {
	return append([]domain.Groomer(nil), r.groomers...), nil
}

func (r *fakeGroomerRepo) GetByID(_ context.Context, id string) (*domain.Groomer, error) {
	for i := range r.groomers {
		if r.groomers[i].ID == id {
			copied := r.groomers[i]
			return &copied, nil
		}
	}
	return nil, groomerRepo.ErrGroomerNotFound
}

func (r *fakeGroomerRepo) GetByStaffUserID(_ context.Context, staffUserID string) (*domain.Groomer, error) {
	for i := range r.groomers {
		if r.groomers[i].StaffUserID != nil && *r.groomers[i].StaffUserID == staffUserID {
			copied := r.groomers[i]
			return &copied, nil
		}
	}
	return nil, groomerRepo.ErrGroomerNotFound
}

func (r *fakeGroomerRepo) GetFirstUnlinked(_ context.Context) (*domain.Groomer, error) {
	for i := range r.groomers {
		if r.groomers[i].StaffUserID == nil {
			copied := r.groomers[i]
			return &copied, nil
		}
	}
	return nil, groomerRepo.ErrGroomerNotFound
}

func (r *fakeGroomerRepo) SetStaffLink(_ context.Context, groomerID, staffUserID string) error {
	for i := range r.groomers {
		if r.groomers[i].ID == groomerID {
			id := staffUserID
			r.groomers[i].StaffUserID = &id
			return nil
		}
	}
	return groomerRepo.ErrGroomerNotFound
}

type fakeUserRepo struct {
	links map[string]string
}

func (r *fakeUserRepo) SetGroomerLink(_ context.Context, userID, groomerID string) error {
	if r.links == nil {
		r.links = make(map[string]string)
	}
	r.links[userID] = groomerID
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	svc := NewService(newFakeGroomerRepo(), &fakeUserRepo{}, fakeTxManager{}, nopLogger{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(domain.DefaultRoster), got.Total)
	assert.Equal(t, domain.GroomerDailyLimit, got.Groomers[0].MaxDailyBookings)
}

func TestLinkStaff_ClaimsFirstUnlinked(t *testing.T) {
	repo := newFakeGroomerRepo()
	users := &fakeUserRepo{}
	svc := NewService(repo, users, fakeTxManager{}, nopLogger{})

	got, err := svc.LinkStaff(context.Background(), "staff-1")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRoster[0].ID, got.ID)
	assert.True(t, got.Linked)
	assert.Equal(t, got.ID, users.links["staff-1"])
}

func TestLinkStaff_Idempotent(t *testing.T) {
	repo := newFakeGroomerRepo()
	svc := NewService(repo, &fakeUserRepo{}, fakeTxManager{}, nopLogger{})

	first, err := svc.LinkStaff(context.Background(), "staff-1")
	require.NoError(t, err)

	second, err := svc.LinkStaff(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.LinkStaff(context.Background(), "staff-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestLinkStaff_RosterFull(t *testing.T) {
	repo := newFakeGroomerRepo()
	svc := NewService(repo, &fakeUserRepo{}, fakeTxManager{}, nopLogger{})

	for i := 0; i < len(domain.DefaultRoster); i++ {
		_, err := svc.LinkStaff(context.Background(), "staff-"+string(rune('a'+i)))
		require.NoError(t, err)
	}

	_, err := svc.LinkStaff(context.Background(), "staff-overflow")
	assert.ErrorIs(t, err, ErrRosterFull)
}
