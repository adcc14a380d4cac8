package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/config"
	"github.com/map-annotator/internal/delivery/http/handler"
	"github.com/map-annotator/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler   *handler.HealthHandler
	configHandler   *handler.ConfigHandler
	viewportHandler *handler.ViewportHandler
	searchHandler   *handler.SearchHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	configHandler *handler.ConfigHandler,
	viewportHandler *handler.ViewportHandler,
	searchHandler *handler.SearchHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Map Annotator",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          customErrorHandler(logger),
		DisableStartupMessage: cfg.Server.Env == "production",
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		healthHandler:   healthHandler,
		configHandler:   configHandler,
		viewportHandler: viewportHandler,
		searchHandler:   searchHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)
	api.Get("/config/map", s.configHandler.MapConfig)

	// Map
	m := api.Group("/map")
	m.Get("/", s.viewportHandler.Render)
	m.Post("/clicks", s.viewportHandler.Click)
	m.Post("/markers/:id/activate", s.viewportHandler.Activate)
	m.Delete("/selection", s.viewportHandler.Dismiss)

	// Address search
	search := api.Group("/search")
	search.Get("/", s.searchHandler.State)
	search.Put("/query", s.searchHandler.InputChange)
	search.Post("/select", s.searchHandler.Select)
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
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

// customErrorHandler - ошибки, не обработанные хендлерами (404 роутера, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
