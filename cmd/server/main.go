// Package main is the entry point for the special baggage service.
//
//	@title						Special Baggage API
//	@version					1.0.0
//	@description				Read-only service returning pet, wheelchair and weapon bags for flights departing in a time window.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/baggage-tracking/special-baggage-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	// Import generated docs for swagger
	_ "github.com/baggage-tracking/special-baggage-service/docs"

	// Application layers
	baggagehttp "github.com/baggage-tracking/special-baggage-service/internal/adapter/http"
	"github.com/baggage-tracking/special-baggage-service/internal/adapter/http/middleware"
	"github.com/baggage-tracking/special-baggage-service/internal/adapter/repository/postgres"
	"github.com/baggage-tracking/special-baggage-service/internal/config"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/logger"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/metrics"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
	"github.com/baggage-tracking/special-baggage-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	connectTimeout  = 60 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	db := connectDatabase(cfg, log)
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error().Err(err).Msg("Error closing database")
		}
	}()

	m := metrics.NewMetrics(metrics.DefaultNamespace)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = baggagehttp.JSONSerializer{}

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.SetupWithOptions(e, *log.Zerolog(), middleware.Options{
		Recovery: middleware.DefaultRecoveryConfig(),
		Observer: m,
	})
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	// Setup routes
	setupRoutes(e, cfg, db, m, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger builds the application logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.Logging.ServiceName,
		Environment:  cfg.App.Env,
	})
	logger.SetGlobal(l)
	return l
}

// connectDatabase opens the PostgreSQL pool or exits.
func connectDatabase(cfg *config.Config, log *logger.Logger) *gorm.DB {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, postgres.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		SlowQuery:       cfg.Database.SlowQuery,

		ConnectInitialDelay: cfg.Database.ConnectDelay,
		ConnectMaxDelay:     cfg.Database.ConnectMaxDelay,
	}, *log.WithComponent("postgres").Zerolog())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	return db
}

// setupRoutes wires repositories, use case and handler and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, m *metrics.Metrics, log *logger.Logger) {
	ucLog := log.WithComponent("usecase").Zerolog()
	uc := usecase.NewSpecialBaggageUseCase(
		postgres.NewGormBagRepository(db),
		postgres.NewGormFlightRepository(db),
		&usecase.Config{
			QueryTimeout: cfg.Database.QueryTimeout,
			Logger:       ucLog,
			Observer:     m,
		},
	)

	handler := baggagehttp.NewBaggageHandler(uc, &baggagehttp.HandlerConfig{
		HealthChecker: postgres.NewHealthChecker(db),
		Clock:         timeutil.NewRealClock(),
		LookupPast:    cfg.Lookup.Past(),
		LookupFuture:  cfg.Lookup.Future(),
		Observer:      m,
		Logger:        log.WithComponent("http").Zerolog(),
	})

	limiter := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RPS,
		BurstSize:         cfg.RateLimit.Burst,
		ExpiresIn:         cfg.RateLimit.ExpiresIn,
		OnLimited:         m.IncRateLimited,
	})
	baggagehttp.RegisterRoutes(e, handler, limiter)

	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Debug().Int("routes", len(e.Routes())).Msg("Routes registered")
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn().Dur("timeout", shutdownTimeout).Msg("In-flight requests did not finish before shutdown timeout")
		} else {
			logger.Error().Err(err).Msg("Error during server shutdown")
		}
	}

	logger.Info().Msg("Server stopped")
}
