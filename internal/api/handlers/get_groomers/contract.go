package get_groomers

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/groomers/models"
)

// GroomerService reads the groomer roster
type GroomerService interface {
	List(ctx context.Context) (*models.GroomerListResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
