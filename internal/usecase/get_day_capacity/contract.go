package get_day_capacity

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// BookingRepository loads bookings for the requested range
type BookingRepository interface {
	GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// GroomerRepository lists the roster
type GroomerRepository interface {
	List(ctx context.Context) ([]domain.Groomer, error)
}

// AbsenceRepository loads staff absences for the requested range
type AbsenceRepository interface {
	GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.StaffAbsence, error)
}

// BlackoutRepository loads calendar blackouts for the requested range
type BlackoutRepository interface {
	GetDateRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarBlackout, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
