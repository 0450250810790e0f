package get_capacity

import (
	"context"
	"time"

	usecase "github.com/bestbuddies/grooming-service/internal/usecase/get_day_capacity"
)

// GetDayCapacityUseCase computes the per-day capacity summary for a range
type GetDayCapacityUseCase interface {
	Execute(ctx context.Context, start, end time.Time) (*usecase.Response, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
