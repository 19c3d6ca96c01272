package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/api/metrics"
	"github.com/strahovochka/insurance-system/internal/api/middleware"
	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=admin manager client"`
	Age          *int   `json:"age"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PassportData string `json:"passport_data"`
	ManagerID    *int64 `json:"manager_id"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns an opaque session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	bindLenient(c, &req)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Register creates a new account and immediately logs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	bindLenient(c, &req)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Role:         req.Role,
		FullName:     req.FullName,
		Email:        req.Email,
		Age:          req.Age,
		Phone:        req.Phone,
		Address:      req.Address,
		PassportData: req.PassportData,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(result.User.Role).Inc()

	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, User: result.User})
}

// Logout revokes the presented token. A request without a token still
// succeeds; revocation is idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.BearerToken(c.Request()); token != "" {
		h.auth.Logout(token)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}
