// cmd/rsa-visualizer-rest-api/main.go
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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/Ohad-Ma/RSA-Visualizer/internal/api/rest/v1"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/app"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	rsaService, err := app.NewRSAServiceFromSettings(&restConfig.Engine, log)
	if err != nil {
		return fmt.Errorf("failed to initialize RSA service: %w", err)
	}
	log.Info("RSA engine initialized with ", restConfig.Engine.MillerRabinRounds, " Miller-Rabin rounds and ", restConfig.Engine.BytePolicy, " byte policy")

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, rsaService, log)
}

// newRouter builds the gin engine with middleware and routes
func newRouter(cfg *config.RestConfig, rsaService rsa.RSAService, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestID(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Cors.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        cfg.Cors.MaxAge,
	}))

	v1.SetupRoutes(r, rsaService, log)
	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, rsaService rsa.RSAService, log logger.Logger) error {
	r := newRouter(cfg, rsaService, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
