package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adityamathur98/ecommerce-backend/internal/config"
	"github.com/adityamathur98/ecommerce-backend/internal/handlers"
	"github.com/adityamathur98/ecommerce-backend/internal/middleware"
	"github.com/adityamathur98/ecommerce-backend/internal/models"
	"github.com/adityamathur98/ecommerce-backend/internal/repositories"
	"github.com/adityamathur98/ecommerce-backend/internal/services"
	"github.com/adityamathur98/ecommerce-backend/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the user repository relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.PrimeProduct{},
		&models.ProductDetails{},
	); err != nil {
		log.Fatalf("Database migration error: %v", err)
	}
	log.Println("Database connected")

	// --- Account events ---
	// The broker is optional: without it the service runs with events
	// disabled rather than refusing to boot.
	var events services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("RabbitMQ unavailable, account events disabled: %v", err)
	} else {
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, events, cfg.JWTSecret)
	catalogService := services.NewCatalogService(catalogRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// --- Fiber app ---
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Public routes. These must be registered before the protected group:
	// grouping on the empty prefix gates every route added after it.
	authHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Protected catalog routes
	protected := app.Group("", middleware.AuthRequired(authService))
	catalogHandler.RegisterRoutes(protected)

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
