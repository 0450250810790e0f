package create_booking

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// HistoryRepository appends to the booking audit trail
type HistoryRepository interface {
	Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error)
}

// UserRepository resolves the booking customer
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// GroomerRepository lists the roster
type GroomerRepository interface {
	List(ctx context.Context) ([]domain.Groomer, error)
}

// CatalogRepository lists the grooming packages
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
}

// AbsenceRepository lists staff absences for the requested date
type AbsenceRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.StaffAbsence, error)
}

// BlackoutRepository resolves calendar blackouts
type BlackoutRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarBlackout, error)
}

// TransactionManager runs the booking creation inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for testability
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the wall-clock TimeProvider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
