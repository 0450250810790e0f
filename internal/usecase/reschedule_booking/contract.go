package reschedule_booking

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Cancel(ctx context.Context, id string, status domain.BookingStatus, note string) error
}

// HistoryRepository appends to the booking audit trail
type HistoryRepository interface {
	Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error)
}

// BlackoutRepository resolves calendar blackouts
type BlackoutRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarBlackout, error)
}

// TransactionManager runs the reschedule inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
