package absences

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// AbsenceRepository is the absence storage surface the service needs
type AbsenceRepository interface {
	Create(ctx context.Context, a *domain.StaffAbsence) (*domain.StaffAbsence, error)
	GetByID(ctx context.Context, id string) (*domain.StaffAbsence, error)
	GetByStaffID(ctx context.Context, staffID string) ([]*domain.StaffAbsence, error)
	GetWithStatus(ctx context.Context, status *domain.AbsenceStatus) ([]*domain.StaffAbsence, error)
	Review(ctx context.Context, id string, status domain.AbsenceStatus, adminNote *string, reviewedAt time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.AbsenceStatus) error
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
