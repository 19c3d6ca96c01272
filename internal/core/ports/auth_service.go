package ports

import (
	"context"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// RegisterInput carries the fields accepted on account registration.
type RegisterInput struct {
	Username     string
	Password     string
	Role         string
	FullName     string
	Email        string
	Age          *int
	Phone        string
	Address      string
	PassportData string
	ManagerID    *int64
}

// LoginResult is what a successful login or registration returns.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService issues, validates and revokes opaque session tokens.
type AuthService interface {
	// Login verifies credentials and mints a session token valid for the
	// configured TTL.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Register creates the account and immediately logs it in. Fails with
	// domain.ErrDuplicateUsername without side effects when the username
	// is taken.
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)

	// VerifyToken returns the session behind the token. Expired sessions
	// are evicted on the spot and reported as domain.ErrTokenExpired;
	// unknown tokens as domain.ErrTokenInvalid.
	VerifyToken(token string) (*domain.Session, error)

	// Logout revokes the token. Idempotent; never fails.
	Logout(token string)
}
