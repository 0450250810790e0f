package block_day

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, status domain.BookingStatus, note string) error
}

// HistoryRepository appends to the booking audit trail
type HistoryRepository interface {
	Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error)
}

// BlackoutRepository stores calendar blackouts
type BlackoutRepository interface {
	Upsert(ctx context.Context, date time.Time, reason string) (*domain.CalendarBlackout, error)
}

// TransactionManager runs the blackout sweep inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
