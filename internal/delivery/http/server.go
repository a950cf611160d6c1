package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/config"
	"github.com/travel-agency/internal/delivery/http/handler"
	"github.com/travel-agency/internal/delivery/http/middleware"
	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	clientHandler   *handler.ClientHandler
	tourHandler     *handler.TourHandler
	bookingHandler  *handler.BookingHandler
	documentHandler *handler.DocumentHandler
	snapshotHandler *handler.SnapshotHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	clientHandler *handler.ClientHandler,
	tourHandler *handler.TourHandler,
	bookingHandler *handler.BookingHandler,
	documentHandler *handler.DocumentHandler,
	snapshotHandler *handler.SnapshotHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Travel Agency",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		BodyLimit:             16 * 1024 * 1024,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		clientHandler:   clientHandler,
		tourHandler:     tourHandler,
		bookingHandler:  bookingHandler,
		documentHandler: documentHandler,
		snapshotHandler: snapshotHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS())
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
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog
	api.Get("/document-types", s.tourHandler.DocumentTypes)

	// Clients
	clients := api.Group("/clients")
	clients.Get("/", s.clientHandler.List)
	clients.Post("/", s.clientHandler.Create)
	clients.Get("/:id", s.clientHandler.Get)
	clients.Put("/:id", s.clientHandler.Update)
	clients.Delete("/:id", s.clientHandler.Delete)
	clients.Get("/:id/bookings", s.clientHandler.SalesHistory)

	// Tours
	tours := api.Group("/tours")
	tours.Get("/", s.tourHandler.List)
	tours.Post("/", s.tourHandler.Create)
	tours.Get("/:id", s.tourHandler.Get)
	tours.Put("/:id", s.tourHandler.Update)
	tours.Delete("/:id", s.tourHandler.Delete)

	// Bookings
	bookings := api.Group("/bookings")
	bookings.Get("/", s.bookingHandler.List)
	bookings.Post("/", s.bookingHandler.Create)
	bookings.Get("/:id", s.bookingHandler.Get)
	bookings.Delete("/:id", s.bookingHandler.Delete)
	bookings.Put("/:id/travel", s.bookingHandler.SetTravel)
	bookings.Put("/:id/status", s.bookingHandler.SetStatus)
	bookings.Get("/:id/warnings", s.bookingHandler.Warnings)
	bookings.Get("/:id/cost", s.bookingHandler.Cost)
	bookings.Post("/:id/submit", s.bookingHandler.Submit)

	bookings.Post("/:id/travelers", s.bookingHandler.AddTraveler)
	bookings.Patch("/:id/travelers/:idx", s.bookingHandler.UpdateTraveler)
	bookings.Delete("/:id/travelers/:idx", s.bookingHandler.RemoveTraveler)

	bookings.Post("/:id/animals", s.bookingHandler.AddAnimal)
	bookings.Delete("/:id/animals/:idx", s.bookingHandler.RemoveAnimal)

	// Documents: заявки и туриста
	for _, prefix := range []string{"/:id/documents", "/:id/travelers/:idx/documents"} {
		docs := bookings.Group(prefix)
		docs.Post("/", s.documentHandler.Add)
		docs.Get("/:doc", s.documentHandler.Get)
		docs.Delete("/:doc", s.documentHandler.Remove)
		docs.Put("/:doc/fields", s.documentHandler.SetFields)
		docs.Put("/:doc/status", s.documentHandler.SetStatus)
		docs.Post("/:doc/verify", s.documentHandler.Verify)
	}

	// Snapshot
	snapshot := api.Group("/snapshot")
	snapshot.Get("/", s.snapshotHandler.Status)
	snapshot.Post("/save", s.snapshotHandler.Save)
	snapshot.Post("/load", s.snapshotHandler.Load)
	snapshot.Get("/export", s.snapshotHandler.Export)
	snapshot.Post("/import", s.snapshotHandler.Import)
}

// App - экземпляр fiber, используется в тестах
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

// customErrorHandler - ошибки fiber (404 маршрута, 405, лимит тела) в формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			appErr := errors.New(fiberErrorCode(e.Code), e.Message, e.Code)
			return c.Status(e.Code).JSON(utils.ErrorResponse{Error: appErr})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return errors.ErrInternalServer.Code
	}
	return errors.ErrInvalidRequest.Code
}
