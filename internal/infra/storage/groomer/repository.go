package groomer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository works with the grooming roster
type Repository struct {
	db DBExecutor
}

// NewRepository creates a groomer repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var groomerColumns = []string{
	"id",
	"name",
	"specialty",
	"max_daily_bookings",
	"reserve",
	"staff_user_id",
	"created_at",
	"updated_at",
}

// List returns the full roster in seeding order
func (r *Repository) List(ctx context.Context) ([]domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groomers := make([]domain.Groomer, 0)
	for rows.Next() {
		g, err := scanGroomer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		groomers = append(groomers, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return groomers, nil
}

// GetByID fetches one roster entry
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	g, err := scanGroomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGroomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan groomer: %v", ErrScanRow, err)
	}

	return g, nil
}

// GetByStaffUserID fetches the roster entry linked to a staff account
func (r *Repository) GetByStaffUserID(ctx context.Context, staffUserID string) (*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"staff_user_id": staffUserID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffUserID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	g, err := scanGroomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGroomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffUserID - scan groomer: %v", ErrScanRow, err)
	}

	return g, nil
}

// GetFirstUnlinked returns the first roster entry without a staff link,
// used when an unlinked staff account signs in
func (r *Repository) GetFirstUnlinked(ctx context.Context) (*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"staff_user_id": nil}).
		OrderBy("created_at ASC, id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstUnlinked - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	g, err := scanGroomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGroomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstUnlinked - scan groomer: %v", ErrScanRow, err)
	}

	return g, nil
}

// SetStaffLink records which staff account works as this groomer
func (r *Repository) SetStaffLink(ctx context.Context, groomerID, staffUserID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("groomers").
		Set("staff_user_id", staffUserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": groomerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStaffLink - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStaffLink - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStaffLink - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGroomerNotFound
	}

	return nil
}

// EnsureDefaults seeds the default roster when the table is empty.
// Runs at startup; ON CONFLICT keeps restarts idempotent.
func (r *Repository) EnsureDefaults(ctx context.Context, roster []domain.Groomer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, g := range roster {
		query, args, err := psqlbuilder.Insert("groomers").
			Columns("id", "name", "specialty", "max_daily_bookings", "reserve").
			Values(g.ID, g.Name, g.Specialty, g.MaxDailyBookings, g.Reserve).
			Suffix("ON CONFLICT (id) DO NOTHING").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: EnsureDefaults - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: EnsureDefaults - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

func scanGroomer(scan func(dest ...interface{}) error) (*domain.Groomer, error) {
	var g domain.Groomer
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&g.ID,
		&g.Name,
		&g.Specialty,
		&g.MaxDailyBookings,
		&g.Reserve,
		&g.StaffUserID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}
