package assign_groomer

import "context"

type BookingService interface {
	AssignGroomer(ctx context.Context, id, groomerID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
