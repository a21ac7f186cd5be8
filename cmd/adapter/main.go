package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	catalogHTTP "github.com/lina-design/storefront/internal/catalog/delivery/http"
	"github.com/lina-design/storefront/internal/catalog/upstream"
	"github.com/lina-design/storefront/internal/config"
	"github.com/lina-design/storefront/pkg/logger"
	"github.com/lina-design/storefront/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-adapter")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	cfg := config.LoadAdapter()

	logger.Logger.Info().
		Str("upstream", cfg.UpstreamBaseURL).
		Bool("api_key_configured", cfg.APIKey != "").
		Msg("Starting catalog adapter")

	if cfg.APIKey == "" {
		// Fail-closed happens per request; the warning makes the
		// misconfiguration visible at startup too.
		logger.Logger.Warn().Msg("LI_API_KEY is not set - all requests will return CONFIGURATION_ERROR")
	}

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.APIKey, cfg.RequestTimeout)
	handler := catalogHTTP.NewAdapterHandler(client)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      catalogHTTP.WrapCORS(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.Port).Msg("Catalog adapter listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down catalog adapter")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
