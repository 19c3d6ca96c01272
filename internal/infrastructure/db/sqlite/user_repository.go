package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// UserRepository is the SQLite implementation of ports.UserRepository.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapUserConstraintErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	user.ID = id
	return id, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.PasswordHash = ""
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	query, args, err := sq.Select("id", "full_name", "email").
		From("users").
		Where(sq.Eq{"role": domain.RoleManager}).
		OrderBy("full_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	var managers []domain.Manager
	for rows.Next() {
		var m domain.Manager
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		managers = append(managers, m)
	}
	return managers, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id int64, upd domain.UserUpdate) error {
	if upd.Empty() {
		return domain.ErrNoFields
	}

	query, args, err := buildUpdateUserQuery(id, upd)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapUserConstraintErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// scanUser reads one row in userColumns order.
func scanUser(s interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var (
		u         domain.User
		age       sql.NullInt64
		phone     sql.NullString
		address   sql.NullString
		passport  sql.NullString
		managerID sql.NullInt64
		created   string
	)
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName,
		&age, &phone, &u.Email, &address, &passport, &managerID, &created)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		u.Age = &v
	}
	u.Phone = phone.String
	u.Address = address.String
	u.PassportData = passport.String
	if managerID.Valid {
		v := managerID.Int64
		u.ManagerID = &v
	}
	if t, err := parseTime(created); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}

// mapUserConstraintErr translates UNIQUE violations into domain errors.
// modernc.org/sqlite reports them as "UNIQUE constraint failed: <table>.<col>".
func mapUserConstraintErr(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return domain.ErrDuplicateUsername
	case strings.Contains(msg, "users.email"):
		return domain.ErrDuplicateEmail
	}
	return fmt.Errorf("user write: %w", err)
}
