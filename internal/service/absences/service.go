package absences

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
	absenceRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/absence"
	"github.com/bestbuddies/grooming-service/internal/service/absences/models"
)

// Service handles the staff absence workflow: groomers file requests,
// admins approve or reject them once, and pending requests can be
// withdrawn by their owner. Approved and pending requests both reduce
// the day capacity; the capacity math itself lives in the availability
// package.
type Service struct {
	absenceRepo AbsenceRepository
	txManager   TransactionManager
	time        TimeProvider
	logger      Logger
}

// NewService creates an absences service
func NewService(
	absenceRepository AbsenceRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		absenceRepo: absenceRepository,
		txManager:   txManager,
		time:        timeProvider,
		logger:      logger,
	}
}

// Create files a new pending absence request
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.AbsenceResponse, error) {
	s.logger.Info("Create: absence request for groomer=%s on %s", req.GroomerID, req.Date.Format(domain.DateFormat))

	created, err := s.absenceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for groomer=%s: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: absence request id=%s created", created.ID)
	return models.FromDomainAbsence(created), nil
}

// GetByStaff lists all requests filed by one staff member
func (s *Service) GetByStaff(ctx context.Context, staffID string) (*models.AbsenceListResponse, error) {
	absences, err := s.absenceRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		s.logger.Error("GetByStaff: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetByStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAbsenceList(absences), nil
}

// List returns requests, optionally filtered by status
func (s *Service) List(ctx context.Context, status *string) (*models.AbsenceListResponse, error) {
	var domainStatus *domain.AbsenceStatus
	if status != nil {
		st := domain.AbsenceStatus(*status)
		domainStatus = &st
	}

	absences, err := s.absenceRepo.GetWithStatus(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAbsenceList(absences), nil
}

// Review applies the admin decision to a pending request. A request
// can only be reviewed once.
func (s *Service) Review(ctx context.Context, id string, req *models.ReviewRequest) (*models.AbsenceResponse, error) {
	s.logger.Info("Review: absence id=%s decision=%s", id, req.Decision)

	var status domain.AbsenceStatus
	switch req.Decision {
	case models.DecisionApprove:
		status = domain.AbsenceApproved
	case models.DecisionReject:
		status = domain.AbsenceRejected
	default:
		s.logger.Warn("Review: unknown decision=%q for absence id=%s", req.Decision, id)
		return nil, ErrInvalidDecision
	}

	reviewedAt := s.time.Now()
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		absence, err := s.getAbsence(ctx, "Review", id)
		if err != nil {
			return err
		}
		if !absence.CanBeReviewed() {
			s.logger.Warn("Review: absence id=%s has status=%s, already reviewed", id, absence.Status)
			return ErrAlreadyReviewed
		}
		return s.absenceRepo.Review(ctx, id, status, req.AdminNote, reviewedAt)
	})
	if err != nil {
		return nil, s.wrapMutationError("Review", id, err)
	}

	s.logger.Info("Review: absence id=%s now %s", id, status)
	return s.fetch(ctx, "Review", id)
}

// CancelByStaff withdraws a pending request. Only the staff member who
// filed it can withdraw, and only while it is still pending.
func (s *Service) CancelByStaff(ctx context.Context, id, staffID string) (*models.AbsenceResponse, error) {
	s.logger.Info("CancelByStaff: absence id=%s by staff=%s", id, staffID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		absence, err := s.getAbsence(ctx, "CancelByStaff", id)
		if err != nil {
			return err
		}
		if absence.StaffID != staffID {
			s.logger.Warn("CancelByStaff: staff=%s does not own absence id=%s", staffID, id)
			return ErrAccessDenied
		}
		if !absence.CanBeCancelledByStaff() {
			s.logger.Warn("CancelByStaff: absence id=%s has status=%s, expected pending", id, absence.Status)
			return ErrNotPending
		}
		return s.absenceRepo.UpdateStatus(ctx, id, domain.AbsenceCancelledByStaff)
	})
	if err != nil {
		return nil, s.wrapMutationError("CancelByStaff", id, err)
	}

	s.logger.Info("CancelByStaff: absence id=%s withdrawn", id)
	return s.fetch(ctx, "CancelByStaff", id)
}

func (s *Service) getAbsence(ctx context.Context, op, id string) (*domain.StaffAbsence, error) {
	absence, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, absenceRepo.ErrAbsenceNotFound) {
			s.logger.Warn("%s: absence not found id=%s", op, id)
			return nil, ErrAbsenceNotFound
		}
		s.logger.Error("%s: repository error for absence id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return absence, nil
}

func (s *Service) fetch(ctx context.Context, op, id string) (*models.AbsenceResponse, error) {
	absence, err := s.getAbsence(ctx, op, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAbsence(absence), nil
}

func (s *Service) wrapMutationError(op, id string, err error) error {
	switch {
	case errors.Is(err, ErrAbsenceNotFound),
		errors.Is(err, ErrAlreadyReviewed),
		errors.Is(err, ErrNotPending),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, absenceRepo.ErrAbsenceNotFound):
		return ErrAbsenceNotFound
	default:
		s.logger.Error("%s: transaction failed for absence id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
	}
}
