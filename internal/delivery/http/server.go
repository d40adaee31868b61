package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/service-directory/internal/config"
	"github.com/service-directory/internal/delivery/http/handler"
	"github.com/service-directory/internal/delivery/http/middleware"
	"github.com/service-directory/internal/pkg/token"
	"github.com/service-directory/internal/repository/cache"
	"github.com/service-directory/internal/repository/postgres"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	db    *postgres.DB
	redis *cache.Redis

	tokenManager *token.Manager

	// Handlers
	authHandler     *handler.AuthHandler
	serviceHandler  *handler.ServiceHandler
	addressHandler  *handler.AddressHandler
	favoriteHandler *handler.FavoriteHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *postgres.DB,
	redis *cache.Redis,
	tokenManager *token.Manager,
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	addressHandler *handler.AddressHandler,
	favoriteHandler *handler.FavoriteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Service Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redis,
		tokenManager:    tokenManager,
		authHandler:     authHandler,
		serviceHandler:  serviceHandler,
		addressHandler:  addressHandler,
		favoriteHandler: favoriteHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	optionalAuth := middleware.OptionalAuth(s.tokenManager)
	requireAuth := middleware.Auth(s.tokenManager)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.authHandler.Register)
	auth.Post("/login", s.authHandler.Login)

	// Service routes. Static segments are registered before the :serviceId
	// wildcard so fiber does not swallow them.
	services := api.Group("/services")
	services.Get("/search", optionalAuth, s.serviceHandler.Search)
	services.Get("/search-address", optionalAuth, s.serviceHandler.SearchByAddress)
	services.Get("/types", s.serviceHandler.GetTypes)
	services.Get("/popular", optionalAuth, s.serviceHandler.GetPopular)
	services.Get("/type/:typeId", optionalAuth, s.serviceHandler.GetByType)

	// Countries and administrative divisions
	services.Get("/countries", s.addressHandler.GetCountries)
	services.Get("/countries/:code/divisions", s.addressHandler.GetDivisions)
	services.Get("/divisions/search", s.addressHandler.SearchDivisions)
	services.Post("/format-address", s.addressHandler.FormatAddress)
	services.Post("/validate-address", s.addressHandler.ValidateAddress)

	services.Get("/:serviceId", optionalAuth, s.serviceHandler.GetByID)

	// Favorites routes
	favorites := api.Group("/favorites", requireAuth)
	favorites.Get("/", s.favoriteHandler.List)
	favorites.Post("/", s.favoriteHandler.Add)
	favorites.Delete("/", s.favoriteHandler.Clear)
	favorites.Get("/:serviceId/status", s.favoriteHandler.Status)
	favorites.Get("/:serviceId/stats", s.favoriteHandler.Stats)
	favorites.Put("/:serviceId/toggle", s.favoriteHandler.Toggle)
	favorites.Delete("/:serviceId", s.favoriteHandler.Remove)
}

// health - проверка живости зависимостей
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := fiber.Map{
		"database": "ok",
		"redis":    "ok",
	}

	if err := s.db.Health(ctx); err != nil {
		status = "unhealthy"
		checks["database"] = err.Error()
	}
	if err := s.redis.Health(ctx); err != nil {
		status = "unhealthy"
		checks["redis"] = err.Error()
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
