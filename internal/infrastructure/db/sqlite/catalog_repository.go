package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// CatalogRepository is the SQLite implementation of ports.CatalogRepository.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListInsuranceTypes(ctx context.Context) ([]domain.InsuranceType, error) {
	query, args, err := sq.Select("id", "name", "category", "options", "base_price").
		From("insurance_types").
		OrderBy("category", "name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurance types: %w", err)
	}
	defer rows.Close()

	var types []domain.InsuranceType
	for rows.Next() {
		var (
			t       domain.InsuranceType
			options sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &options, &t.BasePrice); err != nil {
			return nil, fmt.Errorf("scan insurance type: %w", err)
		}
		if options.Valid && options.String != "" {
			if err := json.Unmarshal([]byte(options.String), &t.Options); err != nil {
				return nil, fmt.Errorf("decode options: %w", err)
			}
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
