package groomers

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
	groomerRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/groomer"
	"github.com/bestbuddies/grooming-service/internal/service/groomers/models"
)

// Service exposes the groomer roster and links staff accounts to
// roster entries. A staff account gets the first unlinked roster slot
// on first login and keeps it afterwards.
type Service struct {
	groomerRepo GroomerRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates a groomers service
func NewService(
	groomerRepository GroomerRepository,
	userRepository UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		groomerRepo: groomerRepository,
		userRepo:    userRepository,
		txManager:   txManager,
		logger:      logger,
	}
}

// List returns the full roster in stable order
func (s *Service) List(ctx context.Context) (*models.GroomerListResponse, error) {
	groomers, err := s.groomerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGroomerList(groomers), nil
}

// GetByID returns one roster entry
func (s *Service) GetByID(ctx context.Context, id string) (*models.GroomerResponse, error) {
	g, err := s.groomerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
			s.logger.Warn("GetByID: groomer not found id=%s", id)
			return nil, ErrGroomerNotFound
		}
		s.logger.Error("GetByID: repository error for groomer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGroomer(g), nil
}

// LinkStaff resolves the roster entry for a staff account, claiming
// the first unlinked slot when the account has none yet
func (s *Service) LinkStaff(ctx context.Context, staffUserID string) (*models.GroomerResponse, error) {
	s.logger.Info("LinkStaff: resolving roster entry for staff=%s", staffUserID)

	existing, err := s.groomerRepo.GetByStaffUserID(ctx, staffUserID)
	if err == nil {
		return models.FromDomainGroomer(existing), nil
	}
	if !errors.Is(err, groomerRepo.ErrGroomerNotFound) {
		s.logger.Error("LinkStaff: repository error for staff=%s: %v", staffUserID, err)
		return nil, fmt.Errorf("%w: LinkStaff - repository error: %v", ErrInternal, err)
	}

	var linked *domain.Groomer
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		g, err := s.groomerRepo.GetFirstUnlinked(ctx)
		if err != nil {
			if errors.Is(err, groomerRepo.ErrGroomerNotFound) {
				s.logger.Warn("LinkStaff: roster has no unlinked entry for staff=%s", staffUserID)
				return ErrRosterFull
			}
			return err
		}
		if err := s.groomerRepo.SetStaffLink(ctx, g.ID, staffUserID); err != nil {
			return err
		}
		if err := s.userRepo.SetGroomerLink(ctx, staffUserID, g.ID); err != nil {
			return err
		}
		g.StaffUserID = &staffUserID
		linked = g
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRosterFull) {
			return nil, err
		}
		s.logger.Error("LinkStaff: transaction failed for staff=%s: %v", staffUserID, err)
		return nil, fmt.Errorf("%w: LinkStaff - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("LinkStaff: staff=%s linked to groomer=%s", staffUserID, linked.ID)
	return models.FromDomainGroomer(linked), nil
}
