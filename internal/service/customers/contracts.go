package customers

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// UserRepository is the user storage surface the warning engine needs.
// GetByID must lock the row when called inside a transaction.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetWatchlist(ctx context.Context) ([]*domain.User, error)
	UpdateWarningState(ctx context.Context, u *domain.User) error
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for testability
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the wall-clock TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
