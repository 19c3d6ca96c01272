package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// CreateApplicationInput carries the fields accepted on application
// submission. The client id always comes from the caller's session, never
// from the request body.
type CreateApplicationInput struct {
	InsuranceTypeID  int64
	InsuranceSubtype string
	Details          domain.Document
}

// ApplicationService exposes application listing, submission and the
// status transition.
type ApplicationService interface {
	// List returns the applications visible to the session's user per the
	// role scoping rules, newest first.
	List(ctx context.Context, sess domain.Session) ([]domain.Application, error)

	// Create submits a new application for the session's user with status
	// Pending and returns its id.
	Create(ctx context.Context, sess domain.Session, in CreateApplicationInput) (int64, error)

	// UpdateStatus transitions the application and assigns the acting
	// manager. Rejects unknown status values with domain.ErrInvalidStatus.
	UpdateStatus(ctx context.Context, sess domain.Session, id int64, status domain.ApplicationStatus) error
}
