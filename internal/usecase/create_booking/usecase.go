package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/availability"
	"github.com/bestbuddies/grooming-service/internal/domain"
	userRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/user"
	"github.com/bestbuddies/grooming-service/internal/pricing"
)

// UseCase creates a booking from a wizard submission. The customer can
// ask for a specific groomer; otherwise the least-loaded working
// groomer takes the slot. The whole check-and-insert runs in a
// serializable transaction so two submissions cannot claim the same
// capacity.
type UseCase struct {
	bookingRepo  BookingRepository
	historyRepo  HistoryRepository
	userRepo     UserRepository
	groomerRepo  GroomerRepository
	catalogRepo  CatalogRepository
	absenceRepo  AbsenceRepository
	blackoutRepo BlackoutRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	userRepo UserRepository,
	groomerRepo GroomerRepository,
	catalogRepo CatalogRepository,
	absenceRepo AbsenceRepository,
	blackoutRepo BlackoutRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		historyRepo:  historyRepo,
		userRepo:     userRepo,
		groomerRepo:  groomerRepo,
		catalogRepo:  catalogRepo,
		absenceRepo:  absenceRepo,
		blackoutRepo: blackoutRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the clock, used in tests
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the booking creation
func (uc *UseCase) Execute(ctx context.Context, req *Request, actor domain.HistoryActor) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, package=%s, date=%s, slot=%s",
		req.CustomerID, req.PackageID, req.Date.Format(domain.DateFormat), req.Slot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Ban check happens before any capacity work
	customer, err := uc.userRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if customer.IsBanned {
		uc.logger.Warn("CreateBooking: customer id=%s is banned", req.CustomerID)
		return nil, ErrCustomerBanned
	}

	packages, err := uc.catalogRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list packages: %v", err)
		return nil, fmt.Errorf("%w: failed to list packages: %v", ErrInternal, err)
	}
	pkg := findPackage(packages, req.PackageID)
	if pkg == nil {
		uc.logger.Warn("CreateBooking: package id=%s not found", req.PackageID)
		return nil, ErrPackageNotFound
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blackout, err := uc.blackoutRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blackout: %v", err)
			return fmt.Errorf("%w: failed to get blackout: %v", ErrInternal, err)
		}
		if blackout != nil {
			uc.logger.Warn("CreateBooking: date %s is blacked out: %s",
				req.Date.Format(domain.DateFormat), blackout.Reason)
			return ErrDayBlackedOut
		}

		roster, err := uc.groomerRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list roster: %v", err)
			return fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
		}

		dayBookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		bookings := derefBookings(dayBookings)

		dayAbsences, err := uc.absenceRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get absences: %v", err)
			return fmt.Errorf("%w: failed to get absences: %v", ErrInternal, err)
		}
		absences := derefAbsences(dayAbsences)

		slot := domain.TimeSlot(req.Slot)

		var groomerID, groomerName *string
		if req.RequestedGroomerID != "" {
			// A named groomer must personally have the slot free and
			// daily capacity left; no silent fallback to someone else
			if !availability.SlotFree(req.RequestedGroomerID, req.Date, slot, bookings, blackout) ||
				!availability.GroomerHasCapacity(req.RequestedGroomerID, req.Date, roster, bookings) {
				uc.logger.Warn("CreateBooking: requested groomer id=%s not available", req.RequestedGroomerID)
				return ErrGroomerNotAvailable
			}
			for i := range roster {
				if roster[i].ID == req.RequestedGroomerID {
					groomerID = &roster[i].ID
					groomerName = &roster[i].Name
					break
				}
			}
			if groomerID == nil {
				uc.logger.Warn("CreateBooking: requested groomer id=%s not on roster", req.RequestedGroomerID)
				return ErrGroomerNotAvailable
			}
		} else if assigned := availability.AssignFairGroomer(req.Date, slot, roster, bookings, absences, blackout); assigned != nil {
			groomerID = &assigned.ID
			groomerName = &assigned.Name
			uc.logger.Info("CreateBooking: fair-assigned groomer id=%s", assigned.ID)
		} else {
			// Nobody can take the slot right now; the booking still goes
			// in as pending and an admin assigns a groomer later
			uc.logger.Warn("CreateBooking: no groomer available on %s %s, booking stays unassigned",
				req.Date.Format(domain.DateFormat), slot)
		}

		cost := pricing.Compute(packages, req.PackageID, req.WeightLabel, req.AddOns, req.SingleServices)

		booking := &domain.Booking{
			Code:           domain.NewBookingCode(now),
			CustomerID:     req.CustomerID,
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			PetName:        req.PetName,
			PetSpecies:     domain.PetSpecies(req.PetSpecies),
			WeightLabel:    req.WeightLabel,
			PackageID:      pkg.ID,
			PackageName:    pkg.Name,
			GroomerID:      groomerID,
			GroomerName:    groomerName,
			Date:           req.Date,
			Slot:           slot,
			AddOns:         req.AddOns,
			SingleServices: req.SingleServices,
			Notes:          req.Notes,
			Cost:           cost,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		_, err = uc.historyRepo.Append(txCtx, &domain.BookingHistoryEntry{
			BookingID: created.ID,
			Action:    domain.ActionCreated,
			Message:   fmt.Sprintf("Booking %s created", created.Code),
			Actor:     actor,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to append history: %v", err)
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%s code=%s created", result.ID, result.Code)
	return toResponse(result), nil
}

func findPackage(packages []domain.Package, id string) *domain.Package {
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i]
		}
	}
	return nil
}

func derefBookings(in []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		out = append(out, *b)
	}
	return out
}

func derefAbsences(in []*domain.StaffAbsence) []domain.StaffAbsence {
	out := make([]domain.StaffAbsence, 0, len(in))
	for _, a := range in {
		out = append(out, *a)
	}
	return out
}
