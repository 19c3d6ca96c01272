package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// SessionKey is the context key the Auth middleware stores the session
// under. The role is stored separately for the RBAC middleware.
const (
	SessionKey = "session"
	RoleKey    = "role"
)

// SessionVerifier is the slice of the auth service the middleware needs.
type SessionVerifier interface {
	VerifyToken(token string) (*domain.Session, error)
}

// Auth validates the opaque bearer token against the session table and
// injects the session into the request context. Absent, unknown and
// expired tokens all yield 401.
func Auth(sessions SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c.Request())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenMissing.Error())
			}

			sess, err := sessions.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(SessionKey, *sess)
			c.Set(RoleKey, sess.Role)

			return next(c)
		}
	}
}

// BearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
