package server

import (
	"context"

	_ "apiproducts/docs" // registers the OpenAPI descriptor with swag
	"apiproducts/internal/handlers"
	"apiproducts/internal/middleware"
	"apiproducts/internal/repositories"
	"apiproducts/internal/services"
	"apiproducts/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP application is built from.
type Dependencies struct {
	Products repositories.ProductRepository
	// Publisher is optional; nil disables product events.
	Publisher services.EventPublisher
	// Ping is optional; it backs the database field of /health.
	Ping   func(ctx context.Context) error
	Logger *zap.Logger
}

// NewApp wires services and handlers into a Fiber application.
func NewApp(deps Dependencies) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	productService := services.NewProductService(deps.Products, deps.Publisher, logger)
	productHandler := handlers.NewProductHandler(productService, validation.New())
	healthHandler := handlers.NewHealthHandler(deps.Ping)

	app := fiber.New(fiber.Config{
		AppName:               "products-api",
		ErrorHandler:          handlers.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())

	healthHandler.RegisterRoutes(app)
	handlers.RegisterDocsRoutes(app)
	productHandler.RegisterRoutes(app)

	return app
}
