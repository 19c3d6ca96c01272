// Package api wires the HTTP surface: routes, middleware and the error
// envelope.
package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/strahovochka/insurance-system/internal/api/handler"
	"github.com/strahovochka/insurance-system/internal/api/middleware"
	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/service"
	"github.com/strahovochka/insurance-system/internal/infrastructure/db/sqlite"
	"github.com/strahovochka/insurance-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("insurance"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	appRepo := sqlite.NewApplicationRepository(db)
	catalogRepo := sqlite.NewCatalogRepository(db)

	authService := service.NewAuthService(userRepo, cfg.SessionTTL)
	userService := service.NewUserService(userRepo)
	appService := service.NewApplicationService(appRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	appHandler := handler.NewApplicationHandler(appService)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	healthHandler := handler.NewHealthHandler(db)

	requireAuth := middleware.Auth(authService)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", catalogHandler.Banner)
	e.GET("/api/insurance-types", catalogHandler.InsuranceTypes)
	e.GET("/api/managers", userHandler.Managers)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/logout", authHandler.Logout) // token optional

	// --- Authenticated routes ---
	e.GET("/api/me", userHandler.Me, requireAuth)
	e.GET("/api/users", userHandler.List, requireAuth, staffOnly)
	e.GET("/api/applications", appHandler.List, requireAuth)
	e.POST("/api/applications", appHandler.Create, requireAuth)
	e.PUT("/api/applications/:id/status", appHandler.UpdateStatus, requireAuth, staffOnly)
	e.PUT("/api/users/:id", userHandler.Update, requireAuth) // self-or-admin, checked in the service
	e.DELETE("/api/users/:id", userHandler.Delete, requireAuth, adminOnly)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
