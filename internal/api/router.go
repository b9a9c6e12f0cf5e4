package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripnest/vacations-api/internal/api/handler"
	"github.com/tripnest/vacations-api/internal/api/middleware"
	"github.com/tripnest/vacations-api/internal/core/ports"
	"github.com/tripnest/vacations-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router mounts. Wiring happens in cmd/api.
type Deps struct {
	Log       zerolog.Logger
	Gate      *middleware.Gate
	Auth      ports.AuthService
	Users     ports.UserService
	Bans      ports.BanService
	Countries ports.CountryService
	Vacations ports.VacationService
	Likes     ports.LikeService
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vacations"))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	banHandler := handler.NewBanHandler(d.Bans)
	countryHandler := handler.NewCountryHandler(d.Countries)
	vacationHandler := handler.NewVacationHandler(d.Vacations)
	likeHandler := handler.NewLikeHandler(d.Likes, d.Vacations)

	authenticated := d.Gate.Authenticated()
	adminOnly := d.Gate.AdminOnly()
	userOrAdmin := d.Gate.UserOrAdmin()

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify, authenticated)

	// --- Users ---
	e.POST("/users", authHandler.Register)
	e.GET("/users/check_email", userHandler.CheckEmail)
	e.GET("/users", userHandler.List, adminOnly)
	e.GET("/users/:id", userHandler.Get, authenticated)
	e.PUT("/users/:id", userHandler.Update, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, adminOnly)
	e.GET("/users/:id/likes", likeHandler.LikedByUser, authenticated)

	// --- Bans (admin only) ---
	e.POST("/bans/:user_id", banHandler.Create, adminOnly)
	e.GET("/bans/:user_id", banHandler.Check, adminOnly)
	e.DELETE("/bans/:user_id", banHandler.Clear, adminOnly)

	// --- Countries ---
	e.GET("/countries", countryHandler.List)
	e.GET("/countries/:id", countryHandler.Get)
	e.POST("/countries", countryHandler.Create, adminOnly)
	e.PUT("/countries/:id", countryHandler.Update, adminOnly)
	e.DELETE("/countries/:id", countryHandler.Delete, adminOnly)

	// --- Vacations & likes ---
	e.GET("/vacations", vacationHandler.List)
	e.GET("/vacations/:id", vacationHandler.Get)
	e.POST("/vacations", vacationHandler.Create, adminOnly)
	e.PUT("/vacations/:id", vacationHandler.Update, adminOnly)
	e.DELETE("/vacations/:id", vacationHandler.Delete, adminOnly)
	e.POST("/vacations/:id/like", likeHandler.Like, userOrAdmin)
	e.DELETE("/vacations/:id/like", likeHandler.Unlike, userOrAdmin)
	e.GET("/vacations/:id/likes", likeHandler.Count)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
