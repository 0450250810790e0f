package create_booking

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/domain"
	createBooking "github.com/bestbuddies/grooming-service/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request, actor domain.HistoryActor) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
