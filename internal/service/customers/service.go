package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-service/internal/domain"
	userRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/user"
	"github.com/bestbuddies/grooming-service/internal/service/customers/models"
)

// Service maintains the customer warning counters and the ban flag.
// Every mutation loads the user under a row lock, rewrites the whole
// warning state and appends to the history in one transaction.
type Service struct {
	userRepo  UserRepository
	txManager TransactionManager
	time      TimeProvider
	logger    Logger
}

// NewService creates a customers service
func NewService(
	userRepository UserRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		userRepo:  userRepository,
		txManager: txManager,
		time:      timeProvider,
		logger:    logger,
	}
}

// GetWarningInfo returns the warning state of one customer
func (s *Service) GetWarningInfo(ctx context.Context, userID string) (*models.WarningInfoResponse, error) {
	u, err := s.getCustomer(ctx, "GetWarningInfo", userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(u), nil
}

// GetWatchlist returns customers at or above the watchlist threshold
func (s *Service) GetWatchlist(ctx context.Context) (*models.WatchlistResponse, error) {
	users, err := s.userRepo.GetWatchlist(ctx)
	if err != nil {
		s.logger.Error("GetWatchlist: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWatchlist - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// IncrementWarning adds one warning to the customer. When the counter
// lands at or past the hard limit and no ban is on record yet, the
// customer is banned with the triggering reason; further increments
// keep counting but never overwrite the original ban reason.
func (s *Service) IncrementWarning(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error) {
	s.logger.Info("IncrementWarning: user=%s reason=%q", userID, reason)

	var updated *domain.User
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		u, err := s.getCustomer(ctx, "IncrementWarning", userID)
		if err != nil {
			return err
		}

		u.WarningCount++
		u.WarningHistory = append(u.WarningHistory, domain.WarningEvent{
			Type:      domain.WarningEventWarning,
			Reason:    reason,
			Timestamp: s.time.Now(),
		})
		if u.WarningCount >= domain.WarningHardLimit && !u.IsBanned {
			u.IsBanned = true
			u.BanReason = &reason
			s.logger.Warn("IncrementWarning: user=%s reached warning limit, banned", userID)
		}

		updated = u
		return s.userRepo.UpdateWarningState(ctx, u)
	})
	if err != nil {
		return nil, s.wrapMutationError("IncrementWarning", userID, err)
	}

	s.logger.Info("IncrementWarning: user=%s now at %d warnings", userID, updated.WarningCount)
	return models.FromDomainUser(updated), nil
}

// Ban bans the customer directly, regardless of the warning counter.
// The counter is bumped to the hard limit so the account also shows up
// consistently on the watchlist.
func (s *Service) Ban(ctx context.Context, userID, reason string) (*models.WarningInfoResponse, error) {
	s.logger.Info("Ban: user=%s reason=%q", userID, reason)

	var updated *domain.User
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		u, err := s.getCustomer(ctx, "Ban", userID)
		if err != nil {
			return err
		}

		u.IsBanned = true
		u.BanReason = &reason
		if u.WarningCount < domain.WarningHardLimit {
			u.WarningCount = domain.WarningHardLimit
		}
		u.WarningHistory = append(u.WarningHistory, domain.WarningEvent{
			Type:      domain.WarningEventBan,
			Reason:    reason,
			Timestamp: s.time.Now(),
		})

		updated = u
		return s.userRepo.UpdateWarningState(ctx, u)
	})
	if err != nil {
		return nil, s.wrapMutationError("Ban", userID, err)
	}

	s.logger.Info("Ban: user=%s banned", userID)
	return models.FromDomainUser(updated), nil
}

// LiftBan removes the ban. With ResetWarnings the counter is cleared
// and a reset entry is recorded; otherwise the counter is clamped to
// the watchlist threshold so the next warning does not re-ban at once.
func (s *Service) LiftBan(ctx context.Context, userID string, req *models.LiftBanRequest) (*models.WarningInfoResponse, error) {
	s.logger.Info("LiftBan: user=%s resetWarnings=%t", userID, req.ResetWarnings)

	var updated *domain.User
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		u, err := s.getCustomer(ctx, "LiftBan", userID)
		if err != nil {
			return err
		}
		if !u.IsBanned {
			s.logger.Warn("LiftBan: user=%s is not banned", userID)
			return ErrNotBanned
		}

		u.IsBanned = false
		u.BanReason = nil
		if req.ResetWarnings {
			u.WarningCount = 0
			u.WarningHistory = append(u.WarningHistory, domain.WarningEvent{
				Type:      domain.WarningEventReset,
				Reason:    "Ban lifted, warnings reset",
				Timestamp: s.time.Now(),
			})
		} else if u.WarningCount > domain.WarningWatchlistThreshold {
			u.WarningCount = domain.WarningWatchlistThreshold
		}

		updated = u
		return s.userRepo.UpdateWarningState(ctx, u)
	})
	if err != nil {
		return nil, s.wrapMutationError("LiftBan", userID, err)
	}

	s.logger.Info("LiftBan: user=%s unbanned, %d warnings remain", userID, updated.WarningCount)
	return models.FromDomainUser(updated), nil
}

// IsBanned reports whether the customer is currently banned
func (s *Service) IsBanned(ctx context.Context, userID string) (bool, error) {
	u, err := s.getCustomer(ctx, "IsBanned", userID)
	if err != nil {
		return false, err
	}
	return u.IsBanned, nil
}

func (s *Service) getCustomer(ctx context.Context, op, userID string) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user not found id=%s", op, userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%s: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if u.Role != domain.RoleCustomer {
		s.logger.Warn("%s: user id=%s has role=%s, expected customer", op, userID, u.Role)
		return nil, ErrNotCustomer
	}
	return u, nil
}

func (s *Service) wrapMutationError(op, userID string, err error) error {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotCustomer),
		errors.Is(err, ErrNotBanned):
		return err
	case errors.Is(err, userRepo.ErrUserNotFound):
		return ErrUserNotFound
	default:
		s.logger.Error("%s: transaction failed for user id=%s: %v", op, userID, err)
		return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
	}
}
