package get_absences

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

// AbsenceService reads absence requests
type AbsenceService interface {
	List(ctx context.Context, status *string) (*models.AbsenceListResponse, error)
	GetByStaff(ctx context.Context, staffID string) (*models.AbsenceListResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
