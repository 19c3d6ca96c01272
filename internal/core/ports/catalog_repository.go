package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// CatalogRepository reads the immutable insurance-type catalog.
type CatalogRepository interface {
	ListInsuranceTypes(ctx context.Context) ([]domain.InsuranceType, error)
}
