package reschedule_booking

import (
	"context"

	usecase "github.com/bestbuddies/grooming-service/internal/usecase/reschedule_booking"
)

// RescheduleBookingUseCase moves a booking to a new date and slot
type RescheduleBookingUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
