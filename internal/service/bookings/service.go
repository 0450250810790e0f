package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
	groomerRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/groomer"
	"github.com/bestbuddies/grooming-service/internal/pricing"
	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

// Service handles booking lifecycle mutations past creation: confirm,
// complete, cancel, assignment, pending edits, media and reviews.
// Creation, reschedules and day-wide operations live in their usecases.
type Service struct {
	bookingRepo BookingRepository
	historyRepo HistoryRepository
	groomerRepo GroomerRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	time        TimeProvider
	logger      Logger
}

// NewService creates a bookings service
func NewService(
	bookingRepository BookingRepository,
	historyRepository HistoryRepository,
	groomerRepository GroomerRepository,
	catalogRepository CatalogRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepository,
		historyRepo: historyRepository,
		groomerRepo: groomerRepository,
		catalogRepo: catalogRepository,
		txManager:   txManager,
		time:        timeProvider,
		logger:      logger,
	}
}

// GetByID fetches a booking. Customers only see their own bookings;
// admin and roster staff see everything.
func (s *Service) GetByID(ctx context.Context, id string, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCustomer lists a customer's bookings, optionally by status
func (s *Service) GetByCustomer(ctx context.Context, customerID string, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByCustomer: fetching bookings for customer=%s", customerID)

	var domainStatus *domain.BookingStatus
	if status != nil {
		converted, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetByCustomer: invalid status=%s for customer=%s", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// List lists bookings for the admin dashboard with filtering
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetFeatured lists the featured gallery entries
func (s *Service) GetFeatured(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetFeatured(ctx)
	if err != nil {
		s.logger.Error("GetFeatured: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetFeatured - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetHistory lists a booking's audit trail
func (s *Service) GetHistory(ctx context.Context, bookingID string, actor models.Actor) (*models.HistoryListResponse, error) {
	booking, err := s.getBooking(ctx, "GetHistory", bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(booking, actor); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetHistory: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(entries), nil
}

// Confirm moves a pending booking to confirmed. A booking cannot be
// confirmed until a groomer is assigned.
func (s *Service) Confirm(ctx context.Context, id string, actor models.Actor) error {
	s.logger.Info("Confirm: confirming booking id=%s by user=%s", id, actor.UserID)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return err
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("Confirm: booking id=%s has status=%s, expected pending", id, booking.Status)
		return ErrInvalidTransition
	}
	if booking.GroomerID == nil || *booking.GroomerID == "" {
		s.logger.Warn("Confirm: booking id=%s has no groomer assigned", id)
		return ErrGroomerUnassigned
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
			return err
		}
		return s.appendHistory(ctx, id, domain.ActionConfirmed, "Booking confirmed", domain.ActorAdmin)
	})
	if err != nil {
		return s.wrapMutationError("Confirm", id, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return nil
}

// Complete finishes a confirmed booking with the groomer's notes
func (s *Service) Complete(ctx context.Context, id string, req *models.CompleteRequest) error {
	s.logger.Info("Complete: completing booking id=%s by user=%s", id, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "Complete", id)
	if err != nil {
		return err
	}

	if booking.Status != domain.StatusConfirmed {
		s.logger.Warn("Complete: booking id=%s has status=%s, expected confirmed", id, booking.Status)
		return ErrInvalidTransition
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Complete(ctx, id, req.GroomingNotes, s.time.Now()); err != nil {
			return err
		}
		return s.appendHistory(ctx, id, domain.ActionCompleted, "Grooming completed", domain.ActorAdmin)
	})
	if err != nil {
		return s.wrapMutationError("Complete", id, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%s", id)
	return nil
}

// Cancel cancels a booking. The status carries who cancelled; customers
// may only cancel their own bookings.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}
	if len(req.Note) > domain.MaxCancellationNoteLength {
		return fmt.Errorf("%w: cancellation note must be at most %d characters", ErrInvalidInput, domain.MaxCancellationNoteLength)
	}

	status := domain.StatusCancelledByAdmin
	note := req.Note
	if !req.Actor.IsAdmin() {
		if booking.CustomerID != req.Actor.UserID {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", req.Actor.UserID, id)
			return ErrAccessDenied
		}
		status = domain.StatusCancelledByCustomer
		if note == "" {
			note = "Cancelled by customer"
		}
	} else if note == "" {
		note = "Cancelled by admin"
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Cancel(ctx, id, status, note); err != nil {
			return err
		}
		return s.appendHistory(ctx, id, domain.ActionCancelled, note, req.Actor.HistoryActor())
	})
	if err != nil {
		return s.wrapMutationError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s with status=%s", id, status)
	return nil
}

// AssignGroomer sets or replaces the groomer on an active booking
func (s *Service) AssignGroomer(ctx context.Context, id, groomerID string) error {
	s.logger.Info("AssignGroomer: assigning groomer=%s to booking id=%s", groomerID, id)

	booking, err := s.getBooking(ctx, "AssignGroomer", id)
	if err != nil {
		return err
	}
	if booking.IsTerminal() {
		s.logger.Warn("AssignGroomer: booking id=%s is terminal, status=%s", id, booking.Status)
		return ErrInvalidTransition
	}

	groomer, err := s.groomerRepo.GetByID(ctx, groomerID)
	if err != nil {
		if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
			s.logger.Warn("AssignGroomer: groomer=%s not found", groomerID)
			return ErrGroomerNotFound
		}
		s.logger.Error("AssignGroomer: repository error for groomer=%s: %v", groomerID, err)
		return fmt.Errorf("%w: AssignGroomer - repository error: %v", ErrInternal, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.AssignGroomer(ctx, id, groomer.ID, groomer.Name); err != nil {
			return err
		}
		message := fmt.Sprintf("Assigned to %s", groomer.Name)
		return s.appendHistory(ctx, id, domain.ActionGroomerAssigned, message, domain.ActorAdmin)
	})
	if err != nil {
		return s.wrapMutationError("AssignGroomer", id, err)
	}

	s.logger.Info("AssignGroomer: successfully assigned groomer=%s to booking id=%s", groomerID, id)
	return nil
}

// UpdatePending lets a customer edit their pending booking. The cost
// breakdown is recomputed from the current catalog.
func (s *Service) UpdatePending(ctx context.Context, id string, req *models.UpdatePendingRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePending: updating booking id=%s by user=%s", id, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "UpdatePending", id)
	if err != nil {
		return nil, err
	}

	if !req.Actor.IsAdmin() && booking.CustomerID != req.Actor.UserID {
		s.logger.Warn("UpdatePending: access denied for user=%s to booking id=%s", req.Actor.UserID, id)
		return nil, ErrAccessDenied
	}
	if !booking.CanBeUpdated() {
		s.logger.Warn("UpdatePending: booking id=%s has status=%s, expected pending", id, booking.Status)
		return nil, ErrCannotUpdate
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PetName != nil {
		booking.PetName = *req.PetName
	}
	if req.WeightLabel != nil {
		booking.WeightLabel = *req.WeightLabel
	}
	if req.AddOns != nil {
		booking.AddOns = req.AddOns
	}
	if req.SingleServices != nil {
		booking.SingleServices = req.SingleServices
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	packages, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("UpdatePending: catalog error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePending - catalog error: %v", ErrInternal, err)
	}
	booking.Cost = pricing.Compute(packages, booking.PackageID, booking.WeightLabel, booking.AddOns, booking.SingleServices)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return err
		}
		return s.appendHistory(ctx, id, domain.ActionUpdated, "Booking details updated", req.Actor.HistoryActor())
	})
	if err != nil {
		return nil, s.wrapMutationError("UpdatePending", id, err)
	}

	s.logger.Info("UpdatePending: successfully updated booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// SetMedia stores or clears the before/after photos. Clearing either
// photo also removes the booking from the featured gallery.
func (s *Service) SetMedia(ctx context.Context, id string, req *models.SetMediaRequest) error {
	s.logger.Info("SetMedia: updating media for booking id=%s by user=%s", id, req.Actor.UserID)

	if _, err := s.getBooking(ctx, "SetMedia", id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.SetMedia(ctx, id, req.BeforeURL, req.AfterURL); err != nil {
			return err
		}
		return s.appendHistory(ctx, id, domain.ActionMediaUpdated, "Before/after photos updated", req.Actor.HistoryActor())
	})
	if err != nil {
		return s.wrapMutationError("SetMedia", id, err)
	}

	return nil
}

// SetReview stores a customer's rating and review on their completed booking
func (s *Service) SetReview(ctx context.Context, id string, req *models.SetReviewRequest) error {
	s.logger.Info("SetReview: reviewing booking id=%s by user=%s", id, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "SetReview", id)
	if err != nil {
		return err
	}

	if booking.CustomerID != req.Actor.UserID {
		s.logger.Warn("SetReview: access denied for user=%s to booking id=%s", req.Actor.UserID, id)
		return ErrAccessDenied
	}
	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("SetReview: booking id=%s has status=%s, expected completed", id, booking.Status)
		return ErrNotCompleted
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return ErrInvalidRating
	}
	if req.Review != nil && len(*req.Review) > domain.MaxReviewLength {
		return fmt.Errorf("%w: review must be at most %d characters", ErrInvalidInput, domain.MaxReviewLength)
	}

	if err := s.bookingRepo.SetReview(ctx, id, req.Rating, req.Review); err != nil {
		return s.wrapMutationError("SetReview", id, err)
	}

	s.logger.Info("SetReview: stored rating=%d for booking id=%s", req.Rating, id)
	return nil
}

// SetFeatured toggles a booking's presence in the public gallery.
// Featuring requires both the before and after photos.
func (s *Service) SetFeatured(ctx context.Context, id string, featured bool) error {
	s.logger.Info("SetFeatured: setting featured=%t for booking id=%s", featured, id)

	booking, err := s.getBooking(ctx, "SetFeatured", id)
	if err != nil {
		return err
	}

	if featured && !booking.HasMedia() {
		s.logger.Warn("SetFeatured: booking id=%s is missing before/after photos", id)
		return ErrMissingMedia
	}

	if err := s.bookingRepo.SetFeatured(ctx, id, featured); err != nil {
		return s.wrapMutationError("SetFeatured", id, err)
	}

	return nil
}

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) checkReadAccess(booking *domain.Booking, actor models.Actor) error {
	if actor.Role == domain.RoleCustomer && booking.CustomerID != actor.UserID {
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) appendHistory(ctx context.Context, bookingID string, action domain.HistoryAction, message string, actor domain.HistoryActor) error {
	_, err := s.historyRepo.Append(ctx, &domain.BookingHistoryEntry{
		BookingID: bookingID,
		Action:    action,
		Message:   message,
		Actor:     actor,
	})
	return err
}

func (s *Service) wrapMutationError(op, id string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s disappeared during update", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
