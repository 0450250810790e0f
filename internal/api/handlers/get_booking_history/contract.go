package get_booking_history

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// BookingService reads the booking audit trail
type BookingService interface {
	GetHistory(ctx context.Context, bookingID string, actor models.Actor) (*models.HistoryListResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
