package cancel_absence

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

// AbsenceService withdraws pending absence requests
type AbsenceService interface {
	CancelByStaff(ctx context.Context, id, staffID string) (*models.AbsenceResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
