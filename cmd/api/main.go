package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-kiosk/internal/config"
	"food-kiosk/internal/database"
	"food-kiosk/internal/handler"
	"food-kiosk/internal/router"
	"food-kiosk/internal/service"
	"food-kiosk/internal/store"
	"food-kiosk/internal/upload"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting food-kiosk API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize state store, falling back to the file backend if postgres
	// is configured but unreachable
	var st store.Store
	if cfg.Store.Backend == config.StoreBackendPostgres {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect to postgres, falling back to file store")
		} else {
			defer pool.Close()
			st, err = store.NewPGStore(ctx, pool, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize postgres store: %w", err)
			}
		}
	}
	if st == nil {
		st, err = store.NewFileStore(cfg.Store.DataDir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize file store: %w", err)
		}
		logger.Info().Str("dir", cfg.Store.DataDir).Msg("using file store for application state")
	}

	// Initialize image uploader
	var uploader upload.Uploader
	if cfg.Upload.Provider == config.UploadProviderS3 {
		uploader, err = upload.NewS3Uploader(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region, cfg.Upload.S3Prefix, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 uploader: %w", err)
		}
	} else {
		uploader = upload.NewImgBBUploader(cfg.Upload.Endpoint, cfg.Upload.APIKey, cfg.Upload.Timeout, logger)
	}

	// Initialize services
	catalogService := service.NewCatalogService(st, uploader, logger)
	cartService := service.NewCartService(st, logger)
	orderService := service.NewOrderService(st, cartService, logger)

	cartBadge, err := service.NewCartBadge(ctx, cartService)
	if err != nil {
		return fmt.Errorf("failed to initialize cart badge: %w", err)
	}
	defer cartBadge.Close()

	// Initialize HTTP handlers
	uploadHandler := handler.NewUploadHandler(uploader, logger)
	menuHandler := handler.NewMenuHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, catalogService, cartBadge, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(uploadHandler, menuHandler, cartHandler, orderHandler, cfg.Admin.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
