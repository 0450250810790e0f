package complete_booking

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

type BookingService interface {
	Complete(ctx context.Context, id string, req *models.CompleteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
