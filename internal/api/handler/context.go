package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/api/middleware"
	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// absence on a protected route means the middleware chain is miswired, so
// fail closed with 401.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenMissing.Error())
	}
	return sess, nil
}

// bindLenient decodes the JSON body into v. A missing or malformed body is
// treated as an empty object rather than an error, so that the per-route
// required-field validation reports the actual missing fields.
func bindLenient(c echo.Context, v any) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return
	}
	_ = json.Unmarshal(body, v)
}
