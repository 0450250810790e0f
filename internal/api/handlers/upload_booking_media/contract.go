package upload_booking_media

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/integrations/mediastore"
	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// MediaStore uploads the grooming photos to the media service
type MediaStore interface {
	UploadWithGracefulDegradation(ctx context.Context, filename string, contentType string, data []byte) (*mediastore.UploadResult, error)
}

// BookingService persists the photo URLs on the booking
type BookingService interface {
	SetMedia(ctx context.Context, id string, req *models.SetMediaRequest) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
