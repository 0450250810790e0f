package absence

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

// Repository works with staff absence requests
type Repository struct {
	db DBExecutor
}

// NewRepository creates an absence repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var absenceColumns = []string{
	"id",
	"groomer_id",
	"staff_id",
	"staff_name",
	"absence_date",
	"reason",
	"proof_name",
	"proof_url",
	"status",
	"admin_note",
	"reviewed_at",
	"created_at",
	"updated_at",
}

// Create files a new absence request
func (r *Repository) Create(ctx context.Context, a *domain.StaffAbsence) (*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("staff_absences").
		Columns("id", "groomer_id", "staff_id", "staff_name", "absence_date", "reason", "proof_name", "proof_url", "status").
		Values(a.ID, a.GroomerID, a.StaffID, a.StaffName, a.Date, a.Reason, a.ProofName, a.ProofURL, a.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID fetches one absence request
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(absenceColumns...).
		From("staff_absences").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	a, err := scanAbsence(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAbsenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan absence: %v", ErrScanRow, err)
	}

	return a, nil
}

// GetByDate lists absence requests for one calendar day
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(absenceColumns...).
		From("staff_absences").
		Where(squirrel.Eq{"absence_date": date}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// GetDateRange lists absence requests between two dates inclusive,
// used by the capacity calendar
func (r *Repository) GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(absenceColumns...).
		From("staff_absences").
		Where(squirrel.GtOrEq{"absence_date": start}).
		Where(squirrel.LtOrEq{"absence_date": end}).
		OrderBy("absence_date ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// GetByStaffID lists the requests filed by one staff account, newest first
func (r *Repository) GetByStaffID(ctx context.Context, staffID string) ([]*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(absenceColumns...).
		From("staff_absences").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("absence_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// GetWithStatus lists requests filtered by status, newest first.
// A nil status lists everything.
func (r *Repository) GetWithStatus(ctx context.Context, status *domain.AbsenceStatus) ([]*domain.StaffAbsence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(absenceColumns...).
		From("staff_absences").
		OrderBy("absence_date DESC, created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// Review records the admin decision on a pending request
func (r *Repository) Review(ctx context.Context, id string, status domain.AbsenceStatus, adminNote *string, reviewedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_absences").
		Set("status", status).
		Set("admin_note", adminNote).
		Set("reviewed_at", reviewedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Review - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Review")
}

// UpdateStatus sets the request status without review metadata,
// used for staff self-cancellation
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AbsenceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_absences").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAbsenceNotFound
	}

	return nil
}

func scanAbsence(scan func(dest ...interface{}) error) (*domain.StaffAbsence, error) {
	var a domain.StaffAbsence
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&a.ID,
		&a.GroomerID,
		&a.StaffID,
		&a.StaffName,
		&a.Date,
		&a.Reason,
		&a.ProofName,
		&a.ProofURL,
		&a.Status,
		&a.AdminNote,
		&a.ReviewedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAbsences(rows *sql.Rows) ([]*domain.StaffAbsence, error) {
	absences := make([]*domain.StaffAbsence, 0)

	for rows.Next() {
		a, err := scanAbsence(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAbsences - scan row: %v", ErrScanRow, err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAbsences - rows error: %v", ErrScanRow, err)
	}

	return absences, nil
}
