package sqlite

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// userColumns is the full column set, password hash included. Callers that
// must not expose the hash strip it after scanning.
var userColumns = []string{
	"id", "username", "password_hash", "role", "full_name", "age",
	"phone", "email", "address", "passport_data", "manager_id", "created_at",
}

func buildInsertUserQuery(u *domain.User) (string, []any, error) {
	return sq.Insert("users").
		Columns("username", "password_hash", "role", "full_name", "age",
			"phone", "email", "address", "passport_data", "manager_id", "created_at").
		Values(u.Username, u.PasswordHash, u.Role, u.FullName, u.Age,
			u.Phone, u.Email, u.Address, u.PassportData, u.ManagerID, formatTime(u.CreatedAt)).
		ToSql()
}

// buildUpdateUserQuery assembles the allow-listed partial update. The
// caller guarantees at least one field is set; squirrel produces invalid
// SQL for an UPDATE without assignments.
func buildUpdateUserQuery(id int64, upd domain.UserUpdate) (string, []any, error) {
	b := sq.Update("users")
	if upd.FullName != nil {
		b = b.Set("full_name", *upd.FullName)
	}
	if upd.Age != nil {
		b = b.Set("age", *upd.Age)
	}
	if upd.Phone != nil {
		b = b.Set("phone", *upd.Phone)
	}
	if upd.Email != nil {
		b = b.Set("email", *upd.Email)
	}
	if upd.Address != nil {
		b = b.Set("address", *upd.Address)
	}
	if upd.PassportData != nil {
		b = b.Set("passport_data", *upd.PassportData)
	}
	if upd.Role != nil {
		b = b.Set("role", *upd.Role)
	}
	if upd.ManagerID != nil {
		b = b.Set("manager_id", *upd.ManagerID)
	}
	return b.Where(sq.Eq{"id": id}).ToSql()
}

// buildListApplicationsQuery assembles the role-scoped listing. Joins are
// LEFT so applications survive deleted counterparts; ordering is newest
// first with id as the tie-break within one second.
func buildListApplicationsQuery(userID int64, role string) (string, []any, error) {
	b := sq.Select(
		"a.id", "a.client_id", "a.manager_id", "a.insurance_type_id",
		"a.insurance_subtype", "a.details", "a.status", "a.created_at",
		"a.processed_at", "a.price",
		"COALESCE(it.name, '') AS insurance_name",
		"COALESCE(uc.full_name, '') AS client_name",
		"COALESCE(um.full_name, '') AS manager_name",
	).
		From("applications a").
		LeftJoin("insurance_types it ON a.insurance_type_id = it.id").
		LeftJoin("users uc ON a.client_id = uc.id").
		LeftJoin("users um ON a.manager_id = um.id").
		OrderBy("a.created_at DESC", "a.id DESC")

	switch role {
	case domain.RoleClient:
		b = b.Where(sq.Eq{"a.client_id": userID})
	case domain.RoleManager:
		b = b.Where(sq.Or{
			sq.Eq{"a.manager_id": userID},
			sq.Eq{"a.manager_id": nil},
		})
	}
	// admin: unscoped

	return b.ToSql()
}

func buildUpdateApplicationStatusQuery(id int64, status domain.ApplicationStatus, managerID *int64, processedAt time.Time) (string, []any, error) {
	b := sq.Update("applications").
		Set("status", string(status)).
		Set("processed_at", formatTime(processedAt))
	if managerID != nil {
		b = b.Set("manager_id", *managerID)
	}
	return b.Where(sq.Eq{"id": id}).ToSql()
}
