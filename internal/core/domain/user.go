package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleClient  = "client"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleClient
}

// User models an account in the brokerage. PasswordHash never serializes.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	Age          *int      `json:"age,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	PassportData string    `json:"passport_data,omitempty"`
	ManagerID    *int64    `json:"manager_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Manager is the reduced projection served on the public managers listing.
type Manager struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UserUpdate is a partial update; nil fields are left untouched.
// Role and ManagerID may only be applied by an admin.
type UserUpdate struct {
	FullName     *string
	Age          *int
	Phone        *string
	Email        *string
	Address      *string
	PassportData *string
	Role         *string
	ManagerID    *int64
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.FullName == nil && u.Age == nil && u.Phone == nil &&
		u.Email == nil && u.Address == nil && u.PassportData == nil &&
		u.Role == nil && u.ManagerID == nil
}
