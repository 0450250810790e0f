package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository works with the append-only booking audit trail.
// Entries are never updated or deleted.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a history repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append records one booking event
func (r *Repository) Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("booking_history").
		Columns("id", "booking_id", "action", "message", "actor").
		Values(e.ID, e.BookingID, e.Action, e.Message, e.Actor).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	e.Timestamp = createdAt.Time
	return e, nil
}

// GetByBookingID lists a booking's audit trail, oldest first
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) ([]*domain.BookingHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "action", "message", "actor", "created_at").
		From("booking_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.BookingHistoryEntry, 0)
	for rows.Next() {
		var e domain.BookingHistoryEntry
		var createdAt sql.NullTime

		err := rows.Scan(&e.ID, &e.BookingID, &e.Action, &e.Message, &e.Actor, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		e.Timestamp = createdAt.Time
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
