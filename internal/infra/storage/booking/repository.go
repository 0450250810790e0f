package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/psqlbuilder"
)

// Repository works with grooming bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"code",
	"customer_id",
	"customer_name",
	"customer_phone",
	"pet_name",
	"pet_species",
	"weight_label",
	"package_id",
	"package_name",
	"groomer_id",
	"groomer_name",
	"booking_date",
	"time_slot",
	"add_ons",
	"single_services",
	"notes",
	"cost",
	"status",
	"before_image_url",
	"after_image_url",
	"featured",
	"rating",
	"review",
	"cancellation_note",
	"cancelled_at",
	"grooming_notes",
	"completed_at",
	"created_at",
	"updated_at",
}

// Create inserts a new booking.
// When the context carries an open transaction (via context.Value) the
// transaction executor is used; slot-availability checks and the insert
// then see the same snapshot.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	addOns, err := json.Marshal(stringsOrEmpty(b.AddOns))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add_ons: %v", ErrEncodeField, err)
	}
	services, err := json.Marshal(stringsOrEmpty(b.SingleServices))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal single_services: %v", ErrEncodeField, err)
	}
	cost, err := json.Marshal(b.Cost)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal cost: %v", ErrEncodeField, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"code",
			"customer_id",
			"customer_name",
			"customer_phone",
			"pet_name",
			"pet_species",
			"weight_label",
			"package_id",
			"package_name",
			"groomer_id",
			"groomer_name",
			"booking_date",
			"time_slot",
			"add_ons",
			"single_services",
			"notes",
			"cost",
			"status",
		).
		Values(
			b.ID,
			b.Code,
			b.CustomerID,
			b.CustomerName,
			b.CustomerPhone,
			b.PetName,
			b.PetSpecies,
			b.WeightLabel,
			b.PackageID,
			b.PackageName,
			b.GroomerID,
			b.GroomerName,
			b.Date,
			b.Slot,
			addOns,
			services,
			b.Notes,
			cost,
			b.Status,
		).
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

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomerID lists a customer's bookings, newest dates first.
// Optionally filters by status.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("booking_date DESC, created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDate lists the bookings of one calendar day.
// Inside a transaction the rows are locked with FOR UPDATE so concurrent
// create/reschedule flows serialize on the day they are mutating.
func (r *Repository) GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("time_slot ASC, created_at ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetDateRange lists bookings between two dates inclusive, used by the
// capacity calendar. Cancelled bookings are included so the caller can
// decide what counts; the range endpoint filters itself.
func (r *Repository) GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": start}).
		Where(squirrel.LtOrEq{"booking_date": end}).
		OrderBy("booking_date ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetWithFilter lists bookings for the admin dashboard with flexible
// filtering by period, status and groomer.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.GroomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"groomer_id": *filter.GroomerID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetFeatured lists featured bookings with both photos, newest first.
// Feeds the public gallery.
func (r *Repository) GetFeatured(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"featured": true}).
		Where(squirrel.NotEq{"before_image_url": nil}).
		Where(squirrel.NotEq{"after_image_url": nil}).
		OrderBy("updated_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFeatured - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFeatured - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update rewrites the mutable booking fields. Used by pending-booking
// edits and reschedules; lifecycle transitions use the dedicated methods.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addOns, err := json.Marshal(stringsOrEmpty(b.AddOns))
	if err != nil {
		return fmt.Errorf("%w: Update - marshal add_ons: %v", ErrEncodeField, err)
	}
	services, err := json.Marshal(stringsOrEmpty(b.SingleServices))
	if err != nil {
		return fmt.Errorf("%w: Update - marshal single_services: %v", ErrEncodeField, err)
	}
	cost, err := json.Marshal(b.Cost)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal cost: %v", ErrEncodeField, err)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("customer_name", b.CustomerName).
		Set("customer_phone", b.CustomerPhone).
		Set("pet_name", b.PetName).
		Set("pet_species", b.PetSpecies).
		Set("weight_label", b.WeightLabel).
		Set("package_id", b.PackageID).
		Set("package_name", b.PackageName).
		Set("groomer_id", b.GroomerID).
		Set("groomer_name", b.GroomerName).
		Set("booking_date", b.Date).
		Set("time_slot", b.Slot).
		Set("add_ons", addOns).
		Set("single_services", services).
		Set("notes", b.Notes).
		Set("cost", cost).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// UpdateStatus sets the booking status
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel cancels a booking with an actor-flavored status and a note
func (r *Repository) Cancel(ctx context.Context, id string, status domain.BookingStatus, note string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_note", note).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// Complete marks a booking completed with the groomer's notes
func (r *Repository) Complete(ctx context.Context, id string, groomingNotes string, completedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("grooming_notes", groomingNotes).
		Set("completed_at", completedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Complete")
}

// AssignGroomer sets the groomer on a booking
func (r *Repository) AssignGroomer(ctx context.Context, id, groomerID, groomerName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("groomer_id", groomerID).
		Set("groomer_name", groomerName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignGroomer - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "AssignGroomer")
}

// SetMedia stores the before/after photo URLs. Clearing either photo also
// drops the booking from the featured gallery.
func (r *Repository) SetMedia(ctx context.Context, id string, beforeURL, afterURL *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("before_image_url", beforeURL).
		Set("after_image_url", afterURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if beforeURL == nil || afterURL == nil {
		updateBuilder = updateBuilder.Set("featured", false)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetMedia - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetMedia")
}

// SetReview stores the customer rating and review text
func (r *Repository) SetReview(ctx context.Context, id string, rating int, review *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("rating", rating).
		Set("review", review).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReview - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetReview")
}

// SetFeatured toggles a booking's presence in the public gallery
func (r *Repository) SetFeatured(ctx context.Context, id string, featured bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("featured", featured).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetFeatured - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetFeatured")
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
		return ErrBookingNotFound
	}

	return nil
}

func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// scanBooking scans one row in bookingColumns order
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var addOns, services, cost []byte
	var rating sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.Code,
		&b.CustomerID,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.PetName,
		&b.PetSpecies,
		&b.WeightLabel,
		&b.PackageID,
		&b.PackageName,
		&b.GroomerID,
		&b.GroomerName,
		&b.Date,
		&b.Slot,
		&addOns,
		&services,
		&b.Notes,
		&cost,
		&b.Status,
		&b.BeforeImageURL,
		&b.AfterImageURL,
		&b.Featured,
		&rating,
		&b.Review,
		&b.CancellationNote,
		&b.CancelledAt,
		&b.GroomingNotes,
		&b.CompletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addOns) > 0 {
		if err := json.Unmarshal(addOns, &b.AddOns); err != nil {
			return nil, fmt.Errorf("%w: scanBooking - unmarshal add_ons: %v", ErrEncodeField, err)
		}
	}
	if len(services) > 0 {
		if err := json.Unmarshal(services, &b.SingleServices); err != nil {
			return nil, fmt.Errorf("%w: scanBooking - unmarshal single_services: %v", ErrEncodeField, err)
		}
	}
	if len(cost) > 0 {
		if err := json.Unmarshal(cost, &b.Cost); err != nil {
			return nil, fmt.Errorf("%w: scanBooking - unmarshal cost: %v", ErrEncodeField, err)
		}
	}

	b.Rating = int(rating.Int64)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings scans query results into a booking slice
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
