package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns its id. The PasswordHash field
	// must already be populated. Uniqueness violations surface as
	// domain.ErrDuplicateUsername / domain.ErrDuplicateEmail with no
	// partial effect.
	Create(ctx context.Context, user *domain.User) (int64, error)

	// FindByUsername returns the user including the password hash, or
	// domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID returns the user with the password hash stripped, or
	// domain.ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns all users, newest first, password hashes stripped.
	List(ctx context.Context) ([]domain.User, error)

	// ListManagers returns all manager accounts ordered by full name.
	ListManagers(ctx context.Context) ([]domain.Manager, error)

	// Update applies a partial update. Returns domain.ErrNoFields when the
	// update is empty and domain.ErrUserNotFound when no row matched.
	Update(ctx context.Context, id int64, upd domain.UserUpdate) error

	// Delete removes the user. Applications referencing the user are left
	// dangling; see the schema notes.
	Delete(ctx context.Context, id int64) error
}
