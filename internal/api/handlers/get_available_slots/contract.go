package get_available_slots

import (
	"context"
	"time"

	usecase "github.com/bestbuddies/grooming-service/internal/usecase/get_slot_availability"
)

// GetSlotAvailabilityUseCase lists free groomers per slot for a day
type GetSlotAvailabilityUseCase interface {
	Execute(ctx context.Context, date time.Time) (*usecase.Response, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
