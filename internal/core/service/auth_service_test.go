package service

import (
	"context"
	"testing"
	"time"

	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64

	lastUpdateID  int64
	lastUpdate    domain.UserUpdate
	updateCalled  bool
	lastDeletedID int64
	deleteCalled  bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if _, exists := r.users[user.Username]; exists {
		return 0, domain.ErrDuplicateUsername
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = cloneUser(user)
	return user.ID, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := cloneUser(u)
			clone.PasswordHash = ""
			return clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		clone := cloneUser(u)
		clone.PasswordHash = ""
		out = append(out, *clone)
	}
	return out, nil
}

func (r *stubUserRepo) ListManagers(_ context.Context) ([]domain.Manager, error) {
	var out []domain.Manager
	for _, u := range r.users {
		if u.Role == domain.RoleManager {
			out = append(out, domain.Manager{ID: u.ID, FullName: u.FullName, Email: u.Email})
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, upd domain.UserUpdate) error {
	r.updateCalled = true
	r.lastUpdateID = id
	r.lastUpdate = upd
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.deleteCalled = true
	r.lastDeletedID = id
	return nil
}

func registerInput(username string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Password: "s3cret",
		Role:     domain.RoleClient,
		FullName: "Test User",
		Email:    username + "@example.com",
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	result, err := svc.Register(context.Background(), registerInput("alice"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked into result")
	}

	sess, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("VerifyToken failed for fresh token: %v", err)
	}
	if sess.Username != "alice" || sess.Role != domain.RoleClient {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.UserID != result.User.ID {
		t.Fatalf("session user id %d != user id %d", sess.UserID, result.User.ID)
	}

	// A second login with the same credentials mints a fresh valid token.
	again, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login after register failed: %v", err)
	}
	if _, err := svc.VerifyToken(again.Token); err != nil {
		t.Fatalf("VerifyToken failed for login token: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	if _, err := svc.Register(context.Background(), registerInput("bob")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), registerInput("bob"))
	if err != domain.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register mutated the store: %d users", len(repo.users))
	}
	if len(svc.sessions) != 1 {
		t.Fatalf("duplicate register issued a session: %d sessions", len(svc.sessions))
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	in := registerInput("carol")
	in.Role = "superuser"
	if _, err := svc.Register(context.Background(), in); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	_, _ = svc.Register(context.Background(), registerInput("dave"))
	if _, err := svc.Login(context.Background(), "dave", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	// Unknown users surface as invalid credentials, not as a not-found
	// that would confirm which usernames exist.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, 24*time.Hour)

	base := time.Now()
	svc.now = func() time.Time { return base }

	result, err := svc.Register(context.Background(), registerInput("erin"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.now = func() time.Time { return base.Add(25 * time.Hour) }

	if _, err := svc.VerifyToken(result.Token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// Eviction happened on first presentation: the token now behaves as if
	// it never existed.
	if _, err := svc.VerifyToken(result.Token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid after eviction, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, time.Hour)

	result, err := svc.Register(context.Background(), registerInput("frank"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.Logout(result.Token)
	svc.Logout(result.Token) // second revocation is a no-op

	if _, err := svc.VerifyToken(result.Token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid after logout, got %v", err)
	}
}

func TestAuthService_VerifyToken_Missing(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), time.Hour)

	if _, err := svc.VerifyToken(""); err != domain.ErrTokenMissing {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
	if _, err := svc.VerifyToken("never-issued"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
