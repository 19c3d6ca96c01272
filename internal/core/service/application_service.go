package service

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// ApplicationService implements application listing, submission and the
// status transition.
type ApplicationService struct {
	apps ports.ApplicationRepository
}

func NewApplicationService(apps ports.ApplicationRepository) *ApplicationService {
	return &ApplicationService{apps: apps}
}

func (s *ApplicationService) List(ctx context.Context, sess domain.Session) ([]domain.Application, error) {
	return s.apps.ListForUser(ctx, sess.UserID, sess.Role)
}

func (s *ApplicationService) Create(ctx context.Context, sess domain.Session, in ports.CreateApplicationInput) (int64, error) {
	app := &domain.Application{
		ClientID:         sess.UserID,
		InsuranceTypeID:  in.InsuranceTypeID,
		InsuranceSubtype: in.InsuranceSubtype,
		Details:          in.Details,
		Status:           domain.StatusPending,
	}
	return s.apps.Create(ctx, app)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, sess domain.Session, id int64, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	// The acting manager (or admin) takes ownership of the application as
	// part of the transition.
	managerID := sess.UserID
	return s.apps.UpdateStatus(ctx, id, status, &managerID)
}
