package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/strahovochka/insurance-system/internal/api/metrics"
	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// AuthService implements login, registration and the session table.
//
// Sessions are held in process memory behind a mutex; a restart invalidates
// every token. Expiry is enforced lazily when a token is presented — there
// is no background sweeper.
type AuthService struct {
	users    ports.UserRepository
	tokenTTL time.Duration

	mu       sync.Mutex
	sessions map[string]domain.Session

	now func() time.Time // swappable in tests
}

func NewAuthService(users ports.UserRepository, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		tokenTTL: tokenTTL,
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user.PasswordHash = ""

	token := s.mintToken(user.ID, user.Username)
	sess := domain.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: s.now().Add(s.tokenTTL),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	metrics.SessionsActive.Inc()

	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		FullName:     in.FullName,
		Email:        in.Email,
		Age:          in.Age,
		Phone:        in.Phone,
		Address:      in.Address,
		PassportData: in.PassportData,
		ManagerID:    in.ManagerID,
		CreatedAt:    s.now().UTC(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.Login(ctx, in.Username, in.Password)
}

func (s *AuthService) VerifyToken(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		metrics.SessionsActive.Dec()
		return nil, domain.ErrTokenExpired
	}
	return &sess, nil
}

func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; ok {
		delete(s.sessions, token)
		metrics.SessionsActive.Dec()
	}
}

// mintToken derives an opaque token from the user identity and the current
// nanosecond clock. The value carries no claims and is only meaningful as a
// key into the session table.
func (s *AuthService) mintToken(userID int64, username string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d%s%d", userID, username, s.now().UnixNano())))
	return hex.EncodeToString(sum[:])
}
