package service

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// UserService implements account reads and administration over the
// user repository.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Managers(ctx context.Context) ([]domain.Manager, error) {
	return s.users.ListManagers(ctx)
}

func (s *UserService) Update(ctx context.Context, actor domain.Session, targetID int64, upd domain.UserUpdate) error {
	if actor.Role != domain.RoleAdmin && actor.UserID != targetID {
		return domain.ErrForbidden
	}

	// Role and manager assignment are admin-only; for everyone else they
	// are dropped rather than rejected, mirroring the field allow-list.
	if actor.Role != domain.RoleAdmin {
		upd.Role = nil
		upd.ManagerID = nil
	}
	if upd.Role != nil && !domain.ValidRole(*upd.Role) {
		return domain.ErrInvalidRole
	}
	if upd.Empty() {
		return domain.ErrNoFields
	}

	return s.users.Update(ctx, targetID, upd)
}

func (s *UserService) Delete(ctx context.Context, actor domain.Session, targetID int64) error {
	if actor.UserID == targetID {
		return domain.ErrSelfDelete
	}
	return s.users.Delete(ctx, targetID)
}
