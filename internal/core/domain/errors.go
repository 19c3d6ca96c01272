package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidRole       = errors.New("invalid role")

	ErrUserNotFound        = errors.New("user not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrForbidden     = errors.New("insufficient permissions")
	ErrSelfDelete    = errors.New("cannot delete own account")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNoFields      = errors.New("no fields to update")
)
