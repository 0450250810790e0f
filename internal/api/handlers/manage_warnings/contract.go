package manage_warnings

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/service/customers/models"
)

// CustomerService runs the warning and ban workflow
type CustomerService interface {
	GetWarningInfo(ctx context.Context, userID string) (*models.WarningInfoResponse, error)
	GetWatchlist(ctx context.Context) (*models.WatchlistResponse, error)
	IncrementWarning(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error)
	Ban(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error)
	LiftBan(ctx context.Context, userID string, req *models.LiftBanRequest) (*models.WarningInfoResponse, error)
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
