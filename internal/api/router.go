package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicore/user-system/internal/api/handler"
	"github.com/clinicore/user-system/internal/api/middleware"
	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
	"github.com/clinicore/user-system/internal/core/service"
)

// Deps are the concrete collaborators constructed at process start and
// passed in explicitly; the router holds no hidden wiring.
type Deps struct {
	AuthService ports.AuthService
	UserService ports.UserService
	Tokens      *service.TokenService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger

	// IncludeErrorDetails enables diagnostic detail in error envelopes.
	// Keep off in production.
	IncludeErrorDetails bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log, deps.IncludeErrorDetails)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usersystem"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	authGuard := middleware.Auth(deps.Tokens, deps.Log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	e.GET("/users", userHandler.GetUsers, authGuard, middleware.RBAC(string(domain.AdminRoleSuperAdmin)))
	e.POST("/users/create-admin", userHandler.CreateAdmin)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
