package manage_blackouts

import (
	"context"
	"time"

	blockday "github.com/bestbuddies/grooming-service/internal/usecase/block_day"
)

// BlockDayUseCase closes a calendar day and cancels its active bookings
type BlockDayUseCase interface {
	Execute(ctx context.Context, date time.Time, reason string) (*blockday.Response, error)
}

// UnblockDayUseCase reopens a blocked calendar day
type UnblockDayUseCase interface {
	Execute(ctx context.Context, date time.Time) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
