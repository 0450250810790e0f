package get_featured_gallery

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// BookingService reads the featured before/after gallery
type BookingService interface {
	GetFeatured(ctx context.Context) (*models.BookingListResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
