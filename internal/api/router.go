package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nomadnav/travel-api/docs"
	"github.com/nomadnav/travel-api/internal/api/handler"
	"github.com/nomadnav/travel-api/internal/api/middleware"
	"github.com/nomadnav/travel-api/internal/core/service"
	mongodb "github.com/nomadnav/travel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nomadnav/travel-api/internal/infrastructure/db/redis"
	"github.com/nomadnav/travel-api/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything the HTTP layer needs beyond its stores.
type RouterConfig struct {
	JWTSecret       string
	CountryCacheTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nomadnav"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	priceRepo := mongodb.NewPriceRepository(db)
	countryRepo := mongodb.NewCountryRepository(db)
	countryCache := redisdb.NewCountryCache(rdb, cfg.CountryCacheTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 7*24*time.Hour)
	priceService := service.NewPriceService(priceRepo, userRepo, log)
	countryService := service.NewCountryService(countryRepo, countryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	priceHandler := handler.NewPriceHandler(priceService)
	countryHandler := handler.NewCountryHandler(countryService)
	requireAuth := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PATCH("/me", authHandler.UpdateProfile, requireAuth)

	// --- Price routes (reads are public, mutations need a token) ---
	prices := e.Group("/api/prices")
	prices.GET("", priceHandler.List)
	prices.GET("/:id", priceHandler.Get)
	prices.POST("", priceHandler.Create, requireAuth)
	prices.PATCH("/:id", priceHandler.Update, requireAuth)
	prices.DELETE("/:id", priceHandler.Delete, requireAuth)

	// --- Country routes (reads are public, mutations are admin-only,
	//     enforced by the core policy) ---
	countries := e.Group("/api/countries")
	countries.GET("", countryHandler.List)
	countries.GET("/:code", countryHandler.Get)
	countries.POST("", countryHandler.Create, requireAuth)
	countries.PATCH("/:code", countryHandler.Update, requireAuth)
	countries.DELETE("/:code", countryHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
