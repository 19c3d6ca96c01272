package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// ApplicationRepository defines the persistence operations for applications.
type ApplicationRepository interface {
	// ListForUser returns applications visible to the given user, newest
	// first, joined with the insurance-type name and counterpart display
	// names. Scoping: a client sees only their own, a manager sees those
	// assigned to them or unassigned, an admin sees all.
	ListForUser(ctx context.Context, userID int64, role string) ([]domain.Application, error)

	// Create inserts an application with status forced to Pending and
	// returns its id.
	Create(ctx context.Context, app *domain.Application) (int64, error)

	// UpdateStatus sets the status and processed timestamp; when managerID
	// is non-nil it also assigns the processing manager. Returns
	// domain.ErrApplicationNotFound when no row matched.
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, managerID *int64) error
}
