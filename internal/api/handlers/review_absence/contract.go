package review_absence

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

// AbsenceService applies admin decisions to absence requests
type AbsenceService interface {
	Review(ctx context.Context, id string, req *models.ReviewRequest) (*models.AbsenceResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
