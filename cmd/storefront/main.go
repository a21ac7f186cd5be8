package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/lina-design/storefront/internal/cart"
	cartcommand "github.com/lina-design/storefront/internal/cart/usecase/command"
	cartquery "github.com/lina-design/storefront/internal/cart/usecase/query"
	"github.com/lina-design/storefront/internal/catalog/gateway"
	catalogquery "github.com/lina-design/storefront/internal/catalog/usecase/query"
	"github.com/lina-design/storefront/internal/checkout"
	"github.com/lina-design/storefront/internal/config"
	"github.com/lina-design/storefront/internal/events"
	"github.com/lina-design/storefront/internal/review"
	reviewcommand "github.com/lina-design/storefront/internal/review/usecase/command"
	reviewquery "github.com/lina-design/storefront/internal/review/usecase/query"
	storefrontHTTP "github.com/lina-design/storefront/internal/storefront/delivery/http"
	"github.com/lina-design/storefront/internal/wishlist"
	wishcommand "github.com/lina-design/storefront/internal/wishlist/usecase/command"
	wishquery "github.com/lina-design/storefront/internal/wishlist/usecase/query"
	"github.com/lina-design/storefront/pkg/kv"
	"github.com/lina-design/storefront/pkg/logger"
	"github.com/lina-design/storefront/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-bff")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	cfg := config.LoadStorefront()

	logger.Logger.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Bool("mock_mode", cfg.UseMockData).
		Msg("Starting storefront BFF")

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

	// Client state lives in Redis when available; otherwise it degrades
	// to process memory and is lost on restart.
	ctx := context.Background()
	var storage kv.Store
	redisStore, err := kv.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, "storefront")
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.RedisAddr).
			Msg("Redis unavailable - client state will not survive restarts")
		storage = kv.NewMemoryStore()
	} else {
		logger.Logger.Info().Str("redis_addr", cfg.RedisAddr).Msg("Connected to Redis")
		defer redisStore.Close()
		storage = redisStore
	}

	// Checkout handoff events are optional; no broker means no events.
	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable - checkout events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	var gatewayOpts []gateway.Option
	if cfg.UseMockData {
		gatewayOpts = append(gatewayOpts, gateway.WithMockMode(cfg.MockDelay))
	}
	catalogGateway := gateway.New(cfg.APIBaseURL, gatewayOpts...)

	cartStore := cart.NewStore(ctx, storage)
	wishlistStore := wishlist.NewStore(ctx, storage)
	reviewStore := review.NewStore(ctx, storage)

	handler := storefrontHTTP.NewStorefrontHandler(
		catalogquery.NewFetchCatalogHandler(catalogGateway),
		cartcommand.NewUpdateQuantityHandler(cartStore),
		cartcommand.NewRemoveItemHandler(cartStore),
		cartquery.NewGetCartHandler(cartStore),
		wishcommand.NewToggleHandler(wishlistStore),
		wishquery.NewListWishlistHandler(wishlistStore),
		reviewcommand.NewAddReviewHandler(reviewStore),
		reviewquery.NewListReviewsHandler(reviewStore),
		checkout.NewBuilder(cfg.StoreBaseURL),
		publisher,
		storage,
	)

	app := fiber.New(fiber.Config{
		AppName:      "Lina Storefront BFF",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-Id",
	}))

	handler.RegisterRoutes(app)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down storefront BFF")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success":   false,
		"error":     err.Error(),
		"requestId": c.GetRespHeader("X-Request-Id"),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
