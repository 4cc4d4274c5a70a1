package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tripcompass/tripcompass/internal/config"
	"github.com/tripcompass/tripcompass/internal/metrics"
	"github.com/tripcompass/tripcompass/internal/places"
	"github.com/tripcompass/tripcompass/internal/ranking"
	"github.com/tripcompass/tripcompass/internal/server"
	"github.com/tripcompass/tripcompass/internal/service"
	"github.com/tripcompass/tripcompass/internal/trends"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the Google Maps client and the place provider on top of it.
	mapsClient, err := places.NewGoogleClient(cfg.Google.APIKey, cfg.Google.RateLimit)
	if err != nil {
		log.Fatalf("Failed to create Google Maps client: %v", err)
	}
	provider := places.NewGoogleProvider(mapsClient, cfg.Language, logger)
	photos := places.NewPhotoClient(cfg.Google.APIKey, cfg.RequestTimeout, logger)

	// Assemble the ranking core around the provider.
	estimator := ranking.NewRadiusEstimator(provider, logger)
	fetcher := ranking.NewFetcher(provider, logger, appMetrics)
	enricher := ranking.NewEnricher(provider, logger)
	planner := service.NewPlanner(logger, estimator, fetcher, enricher, provider, photos, appMetrics)

	// The trend analyzer runs against the Naver open APIs.
	naver := trends.NewClient(
		cfg.Naver.ClientID, cfg.Naver.ClientSecret, cfg.Naver.RateLimit, cfg.RequestTimeout, logger,
	)
	analyzer := trends.NewAnalyzer(naver, logger)

	// Build the HTTP surface: API routes plus monitoring endpoints.
	srv := server.New(logger, appMetrics)
	srv.MountHandlers(&server.Handlers{Planner: planner, Trends: analyzer, Log: logger})
	srv.Mount("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	readTimeout := 5 * time.Second
	writeTimeout := 150 * time.Second
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Mux(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "port", cfg.Port)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server failed", "error", err)
			stop()
		}
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Failed to shut down HTTP server gracefully", "error", err)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
