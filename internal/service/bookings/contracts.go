package bookings

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// BookingRepository is the booking storage surface the service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error)
	GetFeatured(ctx context.Context) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string, status domain.BookingStatus, note string) error
	Complete(ctx context.Context, id string, groomingNotes string, completedAt time.Time) error
	AssignGroomer(ctx context.Context, id, groomerID, groomerName string) error
	SetMedia(ctx context.Context, id string, beforeURL, afterURL *string) error
	SetReview(ctx context.Context, id string, rating int, review *string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
}

// HistoryRepository appends to the booking audit trail
type HistoryRepository interface {
	Append(ctx context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error)
	GetByBookingID(ctx context.Context, bookingID string) ([]*domain.BookingHistoryEntry, error)
}

// GroomerRepository resolves roster entries for assignment
type GroomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Groomer, error)
}

// CatalogRepository resolves packages for cost recomputation
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for testability
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the wall-clock TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
