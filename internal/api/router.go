package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rental-cars/catalog-api/internal/api/handler"
	"github.com/rental-cars/catalog-api/internal/api/middleware"
	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/service"
	"github.com/rental-cars/catalog-api/internal/infrastructure/config"
	mongodb "github.com/rental-cars/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rental-cars/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)

	carRepo := mongodb.NewCarRepository(db)
	carCache := redisdb.NewCarCache(rdb)
	carService := service.NewCarService(carRepo, carCache, log)

	authHandler := handler.NewAuthHandler(authService)
	carHandler := handler.NewCarHandler(carService)
	authenticated := middleware.Auth(authService)
	adminOnly := middleware.RequireRole(authService, domain.RoleAdmin)

	// --- Auth routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authenticated)

	// --- Catalog routes: reads need a valid token, mutations need admin ---
	cars := v1.Group("/cars", authenticated)
	cars.GET("", carHandler.List)
	cars.GET("/:id", carHandler.Show)
	cars.POST("", carHandler.Create, adminOnly)
	cars.PUT("/:id", carHandler.Update, adminOnly)
	cars.DELETE("/:id", carHandler.Remove, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
