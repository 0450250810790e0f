package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
)

// UseCase moves a booking to a new date and slot. When the assigned
// groomer already holds the new window with another active booking the
// caller gets the conflicting booking back and must explicitly confirm
// cancelling it. A rescheduled booking always drops back to pending so
// the admin re-confirms the new time with the customer.
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

// Execute runs the reschedule
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s to %s %s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.Slot)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	slot := domain.TimeSlot(req.Slot)
	if !domain.IsValidTimeSlot(slot) {
		return nil, fmt.Errorf("%w: invalid time slot", ErrInvalidInput)
	}

	var (
		result            *domain.Booking
		cancelledConflict *string
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if booking.IsTerminal() {
			uc.logger.Warn("RescheduleBooking: booking id=%s has status=%s", req.BookingID, booking.Status)
			return ErrTerminalBooking
		}

		blackout, err := uc.blackoutRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blackout: %v", err)
			return fmt.Errorf("%w: failed to get blackout: %v", ErrInternal, err)
		}
		if blackout != nil {
			uc.logger.Warn("RescheduleBooking: date %s is blacked out", req.Date.Format(domain.DateFormat))
			return ErrDayBlackedOut
		}

		if booking.GroomerID != nil {
			conflict, err := uc.findConflict(txCtx, booking, req.Date, slot)
			if err != nil {
				return err
			}
			if conflict != nil {
				if !req.ConfirmConflictCancel {
					uc.logger.Warn("RescheduleBooking: booking id=%s conflicts with id=%s", req.BookingID, conflict.ID)
					return &SlotConflictError{Conflicting: conflict}
				}

				note := fmt.Sprintf("Cancelled due to reschedule conflict with booking %s", booking.Code)
				if err := uc.bookingRepo.Cancel(txCtx, conflict.ID, domain.StatusCancelledByAdmin, note); err != nil {
					uc.logger.Error("RescheduleBooking: failed to cancel conflict id=%s: %v", conflict.ID, err)
					return fmt.Errorf("%w: failed to cancel conflicting booking: %v", ErrInternal, err)
				}
				if _, err := uc.historyRepo.Append(txCtx, &domain.BookingHistoryEntry{
					BookingID: conflict.ID,
					Action:    domain.ActionCancelled,
					Message:   note,
					Actor:     domain.ActorAdmin,
				}); err != nil {
					return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
				}
				code := conflict.Code
				cancelledConflict = &code
				uc.logger.Info("RescheduleBooking: cancelled conflicting booking id=%s", conflict.ID)
			}
		}

		oldDate, oldSlot := booking.Date, booking.Slot
		booking.Date = req.Date
		booking.Slot = slot
		booking.Status = domain.StatusPending

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		message := fmt.Sprintf("Rescheduled from %s %s to %s %s",
			oldDate.Format(domain.DateFormat), oldSlot,
			req.Date.Format(domain.DateFormat), slot)
		if _, err := uc.historyRepo.Append(txCtx, &domain.BookingHistoryEntry{
			BookingID: booking.ID,
			Action:    domain.ActionRescheduled,
			Message:   message,
			Actor:     req.Actor,
		}); err != nil {
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved", result.ID)
	return &Response{
		ID:                result.ID,
		Code:              result.Code,
		Date:              result.Date.Format(domain.DateFormat),
		Slot:              string(result.Slot),
		Status:            string(result.Status),
		CancelledConflict: cancelledConflict,
	}, nil
}

// findConflict returns the other active booking holding the groomer's
// new window, nil when the window is free
func (uc *UseCase) findConflict(ctx context.Context, booking *domain.Booking, date time.Time, slot domain.TimeSlot) (*domain.Booking, error) {
	dayBookings, err := uc.bookingRepo.GetByDate(ctx, date, false)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	for _, other := range dayBookings {
		if other.ID == booking.ID || !other.IsActive() {
			continue
		}
		if other.GroomerID == nil || *other.GroomerID != *booking.GroomerID {
			continue
		}
		if other.Slot == slot {
			return other, nil
		}
	}
	return nil, nil
}
