package unblock_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
	blackoutRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/blackout"
)

var (
	// ErrNotBlocked is returned when the date has no blackout to remove
	ErrNotBlocked = errors.New("unblock_day: day is not blocked")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("unblock_day: internal error")
)

// BlackoutRepository removes calendar blackouts
type BlackoutRepository interface {
	Delete(ctx context.Context, date time.Time) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UseCase reopens a blocked day. Bookings cancelled by the block stay
// cancelled; customers book the reopened day anew.
type UseCase struct {
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(blackoutRepo BlackoutRepository, logger Logger) *UseCase {
	return &UseCase{blackoutRepo: blackoutRepo, logger: logger}
}

// Execute removes the blackout
func (uc *UseCase) Execute(ctx context.Context, date time.Time) error {
	uc.logger.Info("UnblockDay: date=%s", date.Format(domain.DateFormat))

	if err := uc.blackoutRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			uc.logger.Warn("UnblockDay: date=%s is not blocked", date.Format(domain.DateFormat))
			return ErrNotBlocked
		}
		uc.logger.Error("UnblockDay: failed to delete blackout: %v", err)
		return fmt.Errorf("%w: failed to delete blackout: %v", ErrInternal, err)
	}

	uc.logger.Info("UnblockDay: date=%s reopened", date.Format(domain.DateFormat))
	return nil
}
