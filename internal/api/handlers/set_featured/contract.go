package set_featured

import "context"

// BookingService toggles the booking's gallery flag
type BookingService interface {
	SetFeatured(ctx context.Context, id string, featured bool) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
