package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

func TestBuildUpdateUserQuery(t *testing.T) {
	phone := "+7 900 000 00 00"
	role := domain.RoleManager

	sqlStr, args, err := buildUpdateUserQuery(7, domain.UserUpdate{Phone: &phone, Role: &role})
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "UPDATE users")
	assert.Contains(t, sqlStr, "phone = ?")
	assert.Contains(t, sqlStr, "role = ?")
	assert.NotContains(t, sqlStr, "full_name")
	assert.NotContains(t, sqlStr, "password_hash")
	assert.Contains(t, sqlStr, "WHERE id = ?")
	assert.Equal(t, []any{phone, role, int64(7)}, args)
}

func TestBuildListApplicationsQuery_Client(t *testing.T) {
	sqlStr, args, err := buildListApplicationsQuery(42, domain.RoleClient)
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "a.client_id = ?")
	assert.Contains(t, sqlStr, "ORDER BY a.created_at DESC, a.id DESC")
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildListApplicationsQuery_Manager(t *testing.T) {
	sqlStr, args, err := buildListApplicationsQuery(3, domain.RoleManager)
	require.NoError(t, err)

	// Managers see their own applications plus unassigned ones.
	assert.Contains(t, sqlStr, "a.manager_id = ?")
	assert.Contains(t, sqlStr, "a.manager_id IS NULL")
	assert.Equal(t, []any{int64(3)}, args)
}

func TestBuildListApplicationsQuery_Admin(t *testing.T) {
	sqlStr, args, err := buildListApplicationsQuery(1, domain.RoleAdmin)
	require.NoError(t, err)

	assert.NotContains(t, sqlStr, "WHERE")
	assert.Empty(t, args)
}

func TestBuildUpdateApplicationStatusQuery(t *testing.T) {
	managerID := int64(3)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	sqlStr, args, err := buildUpdateApplicationStatusQuery(10, domain.StatusProcessed, &managerID, now)
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "UPDATE applications")
	assert.Contains(t, sqlStr, "status = ?")
	assert.Contains(t, sqlStr, "processed_at = ?")
	assert.Contains(t, sqlStr, "manager_id = ?")
	assert.Equal(t, []any{"Processed", "2026-08-31T12:00:00Z", int64(3), int64(10)}, args)
}

func TestBuildUpdateApplicationStatusQuery_NoManager(t *testing.T) {
	sqlStr, _, err := buildUpdateApplicationStatusQuery(10, domain.StatusRejected, nil, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, sqlStr, "manager_id")
}

func TestTimeRoundTrip(t *testing.T) {
	orig := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	parsed, err := parseTime(formatTime(orig))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(orig))

	// SQLite's own CURRENT_TIMESTAMP format must still parse.
	legacy, err := parseTime("2026-08-31 15:04:05")
	require.NoError(t, err)
	assert.Equal(t, 2026, legacy.Year())
}
