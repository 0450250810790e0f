package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository works with calendar blackouts
type Repository struct {
	db DBExecutor
}

// NewRepository creates a blackout repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var blackoutColumns = []string{
	"id",
	"blackout_date",
	"reason",
	"created_at",
}

// Upsert closes a calendar day. Blocking an already-blocked day just
// replaces the reason.
func (r *Repository) Upsert(ctx context.Context, date time.Time, reason string) (*domain.CalendarBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_blackouts").
		Columns("id", "blackout_date", "reason").
		Values(uuid.NewString(), date, reason).
		Suffix("ON CONFLICT (blackout_date) DO UPDATE SET reason = EXCLUDED.reason RETURNING id, blackout_date, reason, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBlackout(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - scan blackout: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByDate fetches the blackout for a day, nil when the day is open
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CalendarBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("calendar_blackouts").
		Where(squirrel.Eq{"blackout_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBlackout(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan blackout: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetDateRange lists blackouts between two dates inclusive
func (r *Repository) GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("calendar_blackouts").
		Where(squirrel.GtOrEq{"blackout_date": start}).
		Where(squirrel.LtOrEq{"blackout_date": end}).
		OrderBy("blackout_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.CalendarBlackout, 0)
	for rows.Next() {
		b, err := scanBlackout(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDateRange - scan row: %v", ErrScanRow, err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// Delete reopens a calendar day
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_blackouts").
		Where(squirrel.Eq{"blackout_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}

	return nil
}

func scanBlackout(scan func(dest ...interface{}) error) (*domain.CalendarBlackout, error) {
	var b domain.CalendarBlackout
	var createdAt sql.NullTime

	err := scan(&b.ID, &b.Date, &b.Reason, &createdAt)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}
