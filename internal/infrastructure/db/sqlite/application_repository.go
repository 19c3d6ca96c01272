package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// ApplicationRepository is the SQLite implementation of
// ports.ApplicationRepository.
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) ListForUser(ctx context.Context, userID int64, role string) ([]domain.Application, error) {
	query, args, err := buildListApplicationsQuery(userID, role)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (int64, error) {
	// Status is forced at the persistence boundary regardless of what the
	// caller put in the struct.
	app.Status = domain.StatusPending
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	if app.Details == nil {
		app.Details = domain.Document{}
	}

	details, err := json.Marshal(app.Details)
	if err != nil {
		return 0, fmt.Errorf("encode details: %w", err)
	}

	query, args, err := sq.Insert("applications").
		Columns("client_id", "manager_id", "insurance_type_id",
			"insurance_subtype", "details", "status", "created_at").
		Values(app.ClientID, app.ManagerID, app.InsuranceTypeID,
			app.InsuranceSubtype, string(details), string(app.Status), formatTime(app.CreatedAt)).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	app.ID = id
	return id, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, managerID *int64) error {
	query, args, err := buildUpdateApplicationStatusQuery(id, status, managerID, time.Now())
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if n == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// scanApplication reads one row in buildListApplicationsQuery column order.
func scanApplication(s interface{ Scan(dest ...any) error }) (*domain.Application, error) {
	var (
		app       domain.Application
		managerID sql.NullInt64
		subtype   sql.NullString
		details   sql.NullString
		status    string
		created   string
		processed sql.NullString
		price     sql.NullFloat64
	)
	err := s.Scan(&app.ID, &app.ClientID, &managerID, &app.InsuranceTypeID,
		&subtype, &details, &status, &created, &processed, &price,
		&app.InsuranceName, &app.ClientName, &app.ManagerName)
	if err != nil {
		return nil, err
	}

	if managerID.Valid {
		v := managerID.Int64
		app.ManagerID = &v
	}
	app.InsuranceSubtype = subtype.String
	app.Status = domain.ApplicationStatus(status)
	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &app.Details); err != nil {
			return nil, fmt.Errorf("decode details: %w", err)
		}
	}
	if t, err := parseTime(created); err == nil {
		app.CreatedAt = t
	}
	if processed.Valid {
		if t, err := parseTime(processed.String); err == nil {
			app.ProcessedAt = &t
		}
	}
	if price.Valid {
		v := price.Float64
		app.Price = &v
	}
	return &app, nil
}
