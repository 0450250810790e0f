package block_day

import (
	"context"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// UseCase closes a calendar day: the blackout is recorded and every
// booking still holding a slot that day is cancelled with an
// admin-side note. The sweep is all-or-nothing; if one cancellation
// fails the blackout is rolled back too.
type UseCase struct {
	bookingRepo  BookingRepository
	historyRepo  HistoryRepository
	blackoutRepo BlackoutRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	blackoutRepo BlackoutRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		historyRepo:  historyRepo,
		blackoutRepo: blackoutRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Response reports the result of the sweep
type Response struct {
	Date              string `json:"date"`
	Reason            string `json:"reason"`
	CancelledBookings int    `json:"cancelledBookings"`
}

// Execute blocks the day
func (uc *UseCase) Execute(ctx context.Context, date time.Time, reason string) (*Response, error) {
	uc.logger.Info("BlockDay: date=%s reason=%q", date.Format(domain.DateFormat), reason)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	cancelled := 0
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.blackoutRepo.Upsert(txCtx, date, reason); err != nil {
			uc.logger.Error("BlockDay: failed to upsert blackout: %v", err)
			return fmt.Errorf("%w: failed to upsert blackout: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetByDate(txCtx, date, false)
		if err != nil {
			uc.logger.Error("BlockDay: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		note := fmt.Sprintf("Closed day: %s", reason)
		for _, b := range bookings {
			if !b.CanBeCancelled() {
				continue
			}
			if err := uc.bookingRepo.Cancel(txCtx, b.ID, domain.StatusCancelledByAdmin, note); err != nil {
				uc.logger.Error("BlockDay: failed to cancel booking id=%s: %v", b.ID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}
			if _, err := uc.historyRepo.Append(txCtx, &domain.BookingHistoryEntry{
				BookingID: b.ID,
				Action:    domain.ActionCancelled,
				Message:   note,
				Actor:     domain.ActorAdmin,
			}); err != nil {
				uc.logger.Error("BlockDay: failed to append history for booking id=%s: %v", b.ID, err)
				return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
			}
			cancelled++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BlockDay: date=%s blocked, %d bookings cancelled", date.Format(domain.DateFormat), cancelled)
	return &Response{
		Date:              date.Format(domain.DateFormat),
		Reason:            reason,
		CancelledBookings: cancelled,
	}, nil
}
