package get_day_capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/availability"
	"github.com/bestbuddies/grooming-service/internal/domain"
)

// UseCase builds the calendar dataset: one capacity summary per day of
// the requested range. The range is capped so a calendar view cannot
// pull the whole table in one request.
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

// DaySummary is the per-date capacity line of the calendar dataset
type DaySummary struct {
	Date              string  `json:"date"`
	AvailableGroomers int     `json:"availableGroomers"`
	Capacity          int     `json:"capacity"`
	ActiveBookings    int     `json:"activeBookings"`
	Remaining         int     `json:"remaining"`
	Status            string  `json:"status"`
	BlackoutReason    *string `json:"blackoutReason,omitempty"`
}

// Response is the calendar dataset for the range
type Response struct {
	Days []DaySummary `json:"days"`
}

// Execute computes the capacity summaries for [start, end] inclusive
func (uc *UseCase) Execute(ctx context.Context, start, end time.Time) (*Response, error) {
	uc.logger.Info("GetDayCapacity: range %s to %s",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > domain.MaxCapacityRangeDays {
		uc.logger.Warn("GetDayCapacity: range of %d days exceeds limit", days)
		return nil, fmt.Errorf("%w: at most %d days per request", ErrRangeTooWide, domain.MaxCapacityRangeDays)
	}

	roster, err := uc.groomerRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	rangeBookings, err := uc.bookingRepo.GetDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	bookings := make([]domain.Booking, 0, len(rangeBookings))
	for _, b := range rangeBookings {
		bookings = append(bookings, *b)
	}

	rangeAbsences, err := uc.absenceRepo.GetDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to get absences: %v", err)
		return nil, fmt.Errorf("%w: failed to get absences: %v", ErrInternal, err)
	}
	absences := make([]domain.StaffAbsence, 0, len(rangeAbsences))
	for _, a := range rangeAbsences {
		absences = append(absences, *a)
	}

	blackouts, err := uc.blackoutRepo.GetDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}
	blackoutByDate := make(map[string]*domain.CalendarBlackout, len(blackouts))
	for _, b := range blackouts {
		blackoutByDate[b.Date.Format(domain.DateFormat)] = b
	}

	out := make([]DaySummary, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := availability.ComputeDayCapacity(d, roster, bookings, absences, blackoutByDate[d.Format(domain.DateFormat)])
		out = append(out, DaySummary{
			Date:              day.Date.Format(domain.DateFormat),
			AvailableGroomers: day.AvailableGroomers,
			Capacity:          day.Capacity,
			ActiveBookings:    day.ActiveBookings,
			Remaining:         day.Remaining,
			Status:            string(day.Status),
			BlackoutReason:    day.BlackoutReason,
		})
	}

	return &Response{Days: out}, nil
}
