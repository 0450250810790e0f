package get_packages

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// CatalogRepository reads the bookable grooming packages
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
