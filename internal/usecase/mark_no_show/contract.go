package mark_no_show

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/service/customers/models"
)

// BookingRepository is the booking storage surface the use case needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string, status domain.BookingStatus, note string) error
}

// HistoryRepository appends to the booking audit trail
type HistoryRepository interface {
	Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error)
}

// WarningService increments the customer warning counter
type WarningService interface {
	IncrementWarning(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error)
}

// TransactionManager runs the no-show handling inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
