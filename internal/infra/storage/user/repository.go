package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Repository works with user accounts and their warning state
type Repository struct {
	db DBExecutor
}

// NewRepository creates a user repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var userColumns = []string{
	"id",
	"name",
	"email",
	"role",
	"warning_count",
	"is_banned",
	"ban_reason",
	"warning_history",
	"groomer_id",
	"created_at",
	"updated_at",
}

// Create inserts a new user record
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	history, err := json.Marshal(historyOrEmpty(u.WarningHistory))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal warning_history: %v", ErrEncodeField, err)
	}

	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "name", "email", "role", "warning_count", "is_banned", "ban_reason", "warning_history", "groomer_id").
		Values(u.ID, u.Name, u.Email, u.Role, u.WarningCount, u.IsBanned, u.BanReason, history, u.GroomerID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// GetByID fetches a user by ID.
// Inside a transaction the row is locked with FOR UPDATE so concurrent
// warning increments serialize per user.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return u, nil
}

// GetByRole lists users with the given role
func (r *Repository) GetByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetWatchlist lists customers at or above the warning watchlist threshold
func (r *Repository) GetWatchlist(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": domain.RoleCustomer}).
		Where(squirrel.GtOrEq{"warning_count": domain.WarningWatchlistThreshold}).
		OrderBy("warning_count DESC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWatchlist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWatchlist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateWarningState rewrites the warning/ban fields as one unit.
// Count, flag, reason and history always change together; partial writes
// would let the ban flag disagree with the history.
func (r *Repository) UpdateWarningState(ctx context.Context, u *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	history, err := json.Marshal(historyOrEmpty(u.WarningHistory))
	if err != nil {
		return fmt.Errorf("%w: UpdateWarningState - marshal warning_history: %v", ErrEncodeField, err)
	}

	query, args, err := psqlbuilder.Update("users").
		Set("warning_count", u.WarningCount).
		Set("is_banned", u.IsBanned).
		Set("ban_reason", u.BanReason).
		Set("warning_history", history).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWarningState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWarningState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWarningState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetGroomerLink links a staff account to a roster groomer
func (r *Repository) SetGroomerLink(ctx context.Context, userID, groomerID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("groomer_id", groomerID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetGroomerLink - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetGroomerLink - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetGroomerLink - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func historyOrEmpty(history []domain.WarningEvent) []domain.WarningEvent {
	if history == nil {
		return []domain.WarningEvent{}
	}
	return history
}

func scanUser(scan func(dest ...interface{}) error) (*domain.User, error) {
	var u domain.User
	var history []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.WarningCount,
		&u.IsBanned,
		&u.BanReason,
		&history,
		&u.GroomerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &u.WarningHistory); err != nil {
			return nil, fmt.Errorf("%w: scanUser - unmarshal warning_history: %v", ErrEncodeField, err)
		}
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanUsers - scan row: %v", ErrScanRow, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanUsers - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}
