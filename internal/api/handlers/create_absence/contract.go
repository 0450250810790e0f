package create_absence

import (
	"context"

	absencemodels "github.com/bestbuddies/grooming-service/internal/service/absences/models"
	groomermodels "github.com/bestbuddies/grooming-service/internal/service/groomers/models"
)

// AbsenceService files absence requests
type AbsenceService interface {
	Create(ctx context.Context, req *absencemodels.CreateRequest) (*absencemodels.AbsenceResponse, error)
}

// GroomerService resolves the staff user to a roster groomer, claiming a
// free roster seat on first use
type GroomerService interface {
	LinkStaff(ctx context.Context, staffUserID string) (*groomermodels.GroomerResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
