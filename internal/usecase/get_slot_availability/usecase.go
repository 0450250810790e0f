package get_slot_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/availability"
	"github.com/bestbuddies/grooming-service/internal/domain"
)

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_slot_availability: invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("get_slot_availability: internal error")
)

// BookingRepository loads the day's bookings
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// GroomerRepository lists the roster
type GroomerRepository interface {
	List(ctx context.Context) ([]domain.Groomer, error)
}

// AbsenceRepository loads the day's staff absences
type AbsenceRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.StaffAbsence, error)
}

// BlackoutRepository resolves calendar blackouts
type BlackoutRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarBlackout, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UseCase answers the booking wizard's slot picker: how many groomers
// can still take each window of the day, and who they are.
type UseCase struct {
	bookingRepo  BookingRepository
	groomerRepo  GroomerRepository
	absenceRepo  AbsenceRepository
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	groomerRepo GroomerRepository,
	absenceRepo AbsenceRepository,
	blackoutRepo BlackoutRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		groomerRepo:  groomerRepo,
		absenceRepo:  absenceRepo,
		blackoutRepo: blackoutRepo,
		logger:       logger,
	}
}

// GroomerOption one groomer free for a slot
type GroomerOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// SlotAvailability per-window availability
type SlotAvailability struct {
	Slot         string          `json:"slot"`
	StartHour    int             `json:"startHour"`
	EndHour      int             `json:"endHour"`
	FreeGroomers []GroomerOption `json:"freeGroomers"`
	Available    bool            `json:"available"`
}

// Response is the day's slot picker data
type Response struct {
	Date         string             `json:"date"`
	Closed       bool               `json:"closed"`
	ClosedReason *string            `json:"closedReason,omitempty"`
	Slots        []SlotAvailability `json:"slots"`
}

// Execute computes the per-slot availability for the date
func (uc *UseCase) Execute(ctx context.Context, date time.Time) (*Response, error) {
	uc.logger.Info("GetSlotAvailability: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	blackout, err := uc.blackoutRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to get blackout: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout: %v", ErrInternal, err)
	}

	roster, err := uc.groomerRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	dayBookings, err := uc.bookingRepo.GetByDate(ctx, date, false)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	bookings := make([]domain.Booking, 0, len(dayBookings))
	for _, b := range dayBookings {
		bookings = append(bookings, *b)
	}

	dayAbsences, err := uc.absenceRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to get absences: %v", err)
		return nil, fmt.Errorf("%w: failed to get absences: %v", ErrInternal, err)
	}
	absences := make([]domain.StaffAbsence, 0, len(dayAbsences))
	for _, a := range dayAbsences {
		absences = append(absences, *a)
	}

	slots := make([]SlotAvailability, 0, len(domain.StandardTimeSlots))
	for _, slot := range domain.StandardTimeSlots {
		free := availability.FreeGroomersForSlot(date, slot, roster, bookings, absences, blackout)
		options := make([]GroomerOption, 0, len(free))
		for _, g := range free {
			if !availability.GroomerHasCapacity(g.ID, date, roster, bookings) {
				continue
			}
			options = append(options, GroomerOption{ID: g.ID, Name: g.Name, Specialty: g.Specialty})
		}
		start, end := slot.Bounds()
		slots = append(slots, SlotAvailability{
			Slot:         string(slot),
			StartHour:    start,
			EndHour:      end,
			FreeGroomers: options,
			Available:    len(options) > 0,
		})
	}

	resp := &Response{
		Date:   date.Format(domain.DateFormat),
		Closed: blackout != nil,
		Slots:  slots,
	}
	if blackout != nil {
		reason := blackout.Reason
		resp.ClosedReason = &reason
	}
	return resp, nil
}
