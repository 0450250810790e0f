package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository works with the grooming package catalog
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var packageColumns = []string{
	"id",
	"name",
	"type",
	"duration_minutes",
	"includes",
	"tiers",
	"created_at",
	"updated_at",
}

// List returns the catalog in insertion order
func (r *Repository) List(ctx context.Context) ([]domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
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

	packages := make([]domain.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// GetByID fetches one package
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return p, nil
}

// EnsureDefaults seeds the default catalog when the table is empty.
// Runs at startup; ON CONFLICT keeps restarts idempotent and preserves
// admin price edits.
func (r *Repository) EnsureDefaults(ctx context.Context, packages []domain.Package) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, p := range packages {
		includes, err := json.Marshal(p.Includes)
		if err != nil {
			return fmt.Errorf("%w: EnsureDefaults - marshal includes: %v", ErrEncodeField, err)
		}
		tiers, err := json.Marshal(p.Tiers)
		if err != nil {
			return fmt.Errorf("%w: EnsureDefaults - marshal tiers: %v", ErrEncodeField, err)
		}

		query, args, err := psqlbuilder.Insert("packages").
			Columns("id", "name", "type", "duration_minutes", "includes", "tiers").
			Values(p.ID, p.Name, p.Type, p.DurationMinutes, includes, tiers).
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

func scanPackage(scan func(dest ...interface{}) error) (*domain.Package, error) {
	var p domain.Package
	var includes, tiers []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.DurationMinutes,
		&includes,
		&tiers,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(includes) > 0 {
		if err := json.Unmarshal(includes, &p.Includes); err != nil {
			return nil, fmt.Errorf("%w: scanPackage - unmarshal includes: %v", ErrEncodeField, err)
		}
	}
	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &p.Tiers); err != nil {
			return nil, fmt.Errorf("%w: scanPackage - unmarshal tiers: %v", ErrEncodeField, err)
		}
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
