package groomers

import (
	"context"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// GroomerRepository is the roster storage surface the service needs
type GroomerRepository interface {
	List(ctx context.Context) ([]domain.Groomer, error)
	GetByID(ctx context.Context, id string) (*domain.Groomer, error)
	GetByStaffUserID(ctx context.Context, staffUserID string) (*domain.Groomer, error)
	GetFirstUnlinked(ctx context.Context) (*domain.Groomer, error)
	SetStaffLink(ctx context.Context, groomerID, staffUserID string) error
}

// UserRepository links staff accounts back to roster entries
type UserRepository interface {
	SetGroomerLink(ctx context.Context, userID, groomerID string) error
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
