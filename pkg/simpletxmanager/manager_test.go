package simpletxmanager

import (
	"context"
	"database/sql"
	"testing"

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

func TestNestedCallsJoinOpenTransaction(t *testing.T) {
	// the nil db guarantees the test fails loudly if a second
	// transaction is ever opened
	m := NewTransactionManager(nil)
	ctx := dbmetrics.WithExecutor(context.Background(), stubExecutor{})

	calls := 0
	join := func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	}

	require.NoError(t, m.Do(ctx, join))
	require.NoError(t, m.DoSerializable(ctx, join))
	require.NoError(t, m.DoReadOnly(ctx, join))

	assert.Equal(t, 3, calls)
}
