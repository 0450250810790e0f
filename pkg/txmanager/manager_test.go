package txmanager

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
)

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

// inTxContext mimics a callback context handed out by an outer manager.
func inTxContext() context.Context {
	return dbmetrics.WithExecutor(context.Background(), stubExecutor{})
}

func TestDoSerializable_JoinsOpenTransaction(t *testing.T) {
	// the nil db guarantees the test fails loudly if a second
	// transaction is ever opened
	m := NewTransactionManager(nil)

	calls := 0
	err := m.DoSerializable(inTxContext(), func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoSerializable_NestedFailurePropagatesWithoutRetry(t *testing.T) {
	m := NewTransactionManager(nil)
	serializationErr := &pq.Error{Code: "40001"}

	calls := 0
	err := m.DoSerializable(inTxContext(), func(ctx context.Context) error {
		calls++
		return serializationErr
	})

	// the outermost manager owns the retries; the joined call runs once
	assert.ErrorIs(t, err, serializationErr)
	assert.Equal(t, 1, calls)
}

func TestDo_JoinsOpenTransaction(t *testing.T) {
	m := NewTransactionManager(nil)

	calls := 0
	require.NoError(t, m.Do(inTxContext(), func(ctx context.Context) error {
		calls++
		return nil
	}))
	require.NoError(t, m.DoReadOnly(inTxContext(), func(ctx context.Context) error {
		calls++
		return nil
	}))

	assert.Equal(t, 2, calls)
}
