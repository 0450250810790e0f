package unblock_day

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	blackoutRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/blackout"
)

type fakeBlackoutRepo struct {
	blackouts map[string]string
}

func (r *fakeBlackoutRepo) Delete(_ context.Context, date time.Time) error {
	key := date.Format(domain.DateFormat)
	if _, ok := r.blackouts[key]; !ok {
		return blackoutRepo.ErrBlackoutNotFound
	}
	delete(r.blackouts, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	repo := &fakeBlackoutRepo{blackouts: map[string]string{"2026-06-12": "Holiday"}}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), date)
	require.NoError(t, err)
	assert.Empty(t, repo.blackouts)

	err = uc.Execute(context.Background(), date)
	assert.ErrorIs(t, err, ErrNotBlocked)
}
