package main

import (
	"context"
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
	"github.com/rs/zerolog"

	delivery "github.com/canarias-tourism/backend/internal/delivery/http"
	"github.com/canarias-tourism/backend/internal/domain"
	"github.com/canarias-tourism/backend/internal/repository/jsonfile"
	"github.com/canarias-tourism/backend/internal/repository/postgres"
	"github.com/canarias-tourism/backend/internal/service"
)

func main() {
	log := newLogger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Dataset source: PostgreSQL when configured, JSON file otherwise
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var source domain.RecordSource
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("Could not connect to database, falling back to JSON dataset")
		} else if pg := postgres.New(pool); pg.Health(ctx) != nil {
			log.Warn().Msg("Database unreachable, falling back to JSON dataset")
			pool.Close()
		} else {
			defer pool.Close()
			source = pg
			log.Info().Msg("Loading dataset from PostgreSQL")
		}
	}
	if source == nil {
		source = jsonfile.New(cfg.DataFilePath, log)
		log.Info().Str("path", cfg.DataFilePath).Msg("Loading dataset from JSON file")
	}

	records, err := source.LoadRecords(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load dataset, serving empty results")
		records = nil
	}
	log.Info().Int("records", len(records)).Msg("Dataset loaded")

	// Dependency Injection: Services
	gate := service.NewDomainGate()
	interpreter := service.NewQueryInterpreter()
	retriever := service.NewRetriever(records, interpreter, log)
	claude := service.NewClaudeBridge(cfg.ClaudeBaseURL, cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.MaxTokens, cfg.Temperature)
	assistant := service.NewAssistant(gate, retriever, claude, log)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Canarias Tourism AI Assistant v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-API-Key",
	}))

	// Routes
	handler := delivery.NewHandler(assistant, retriever)
	delivery.SetupRoutes(app, handler, cfg.MasterAPIKey)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

func newLogger() zerolog.Logger {
	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "canarias-tourism-backend").
		Logger()
	if getEnv("GO_ENV", "development") == "development" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return log
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
