package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// UserService exposes account reads and administration.
type UserService interface {
	// Profile returns the user's own record, password hash stripped.
	Profile(ctx context.Context, userID int64) (*domain.User, error)

	// List returns all users. Restricted to admin and manager callers at
	// the routing layer.
	List(ctx context.Context) ([]domain.User, error)

	// Managers returns the public manager listing.
	Managers(ctx context.Context) ([]domain.Manager, error)

	// Update applies a partial update to targetID. Only the target user
	// themselves or an admin may update; role and manager assignment are
	// applied for admin actors only and silently ignored otherwise.
	Update(ctx context.Context, actor domain.Session, targetID int64, upd domain.UserUpdate) error

	// Delete removes targetID. Admin only (enforced at routing); deleting
	// one's own account fails with domain.ErrSelfDelete.
	Delete(ctx context.Context, actor domain.Session, targetID int64) error
}
