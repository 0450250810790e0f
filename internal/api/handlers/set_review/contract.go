package set_review

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// BookingService records the customer's rating and review
type BookingService interface {
	SetReview(ctx context.Context, id string, req *models.SetReviewRequest) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
