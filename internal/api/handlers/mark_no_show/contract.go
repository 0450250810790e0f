package mark_no_show

import "context"

// MarkNoShowUseCase cancels a booking as a no-show and issues a warning
type MarkNoShowUseCase interface {
	Execute(ctx context.Context, bookingID string) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
