package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/conecast/backend/internal/chart"
	"github.com/conecast/backend/internal/delivery/http"
	"github.com/conecast/backend/internal/domain"
	"github.com/conecast/backend/internal/regression"
	"github.com/conecast/backend/internal/repository/postgres"
	"github.com/conecast/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			pool = nil
		}
	}

	// Dependency Injection: Repositories
	var repo service.PredictionRepository
	if pool != nil {
		defer pool.Close()
		log.Println("Connected to PostgreSQL")
		repo = postgres.NewPostgresRepository(pool)
	} else {
		log.Println("Running with in-memory prediction log only")
		repo = postgres.NewMockRepository()
	}

	// Dependency Injection: Services
	chartHandle := chart.NewHandle(func() chart.Renderer {
		return chart.NewMemoryRenderer()
	})
	defer chartHandle.Close()

	fixed := regression.Coefficients{Slope: cfg.ModelSlope, Intercept: cfg.ModelIntercept}
	predictor, err := service.NewPredictor(domain.DefaultDataset(), cfg.ModelMode, fixed, repo, chartHandle)
	if err != nil {
		log.Fatalf("Failed to build predictor: %v", err)
	}

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "ConeCast API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, predictor, repo)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	predictor.WaitBackground()
	log.Println("Server exited gracefully")
}

type Config struct {
	DatabaseURL    string
	Port           string
	Env            string
	ModelMode      string
	ModelSlope     float64
	ModelIntercept float64
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GO_ENV", "development"),
		ModelMode:      getEnv("MODEL_MODE", domain.ModelModeComputed),
		ModelSlope:     getEnvFloat("MODEL_SLOPE", 12.66),
		ModelIntercept: getEnvFloat("MODEL_INTERCEPT", -147.59),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: invalid float for %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
