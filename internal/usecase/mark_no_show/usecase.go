package mark_no_show

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
)

// UseCase marks a booking as a customer no-show: the booking is
// cancelled on the admin side and the customer picks up one warning.
// Both writes happen in the same serializable transaction so a
// no-show never cancels without the warning, or the other way round.
type UseCase struct {
	bookingRepo BookingRepository
	historyRepo HistoryRepository
	warnings    WarningService
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	warnings WarningService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		historyRepo: historyRepo,
		warnings:    warnings,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute marks the booking as a no-show
func (uc *UseCase) Execute(ctx context.Context, bookingID string) error {
	uc.logger.Info("MarkNoShow: booking=%s", bookingID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("MarkNoShow: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("MarkNoShow: failed to get booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if !booking.CanBeCancelled() {
			uc.logger.Warn("MarkNoShow: booking id=%s has status=%s", bookingID, booking.Status)
			return ErrInvalidState
		}

		note := "Marked as no-show by admin"
		if err := uc.bookingRepo.Cancel(txCtx, bookingID, domain.StatusCancelledByAdmin, note); err != nil {
			uc.logger.Error("MarkNoShow: failed to cancel booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		if _, err := uc.historyRepo.Append(txCtx, &domain.BookingHistoryEntry{
			BookingID: bookingID,
			Action:    domain.ActionNoShow,
			Message:   note,
			Actor:     domain.ActorAdmin,
		}); err != nil {
			uc.logger.Error("MarkNoShow: failed to append history: %v", err)
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		reason := fmt.Sprintf("No-show on %s at %s", booking.Date.Format(domain.DateFormat), booking.Slot)
		if _, err := uc.warnings.IncrementWarning(txCtx, booking.CustomerID, reason); err != nil {
			uc.logger.Error("MarkNoShow: failed to increment warning for customer=%s: %v", booking.CustomerID, err)
			return fmt.Errorf("%w: failed to increment warning: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("MarkNoShow: booking id=%s marked as no-show", bookingID)
	return nil
}
