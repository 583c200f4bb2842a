package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katana-forge/storefront/internal/api/handlers"
	"github.com/katana-forge/storefront/internal/api/middleware"
	"github.com/katana-forge/storefront/internal/cache"
	"github.com/katana-forge/storefront/internal/cart"
	"github.com/katana-forge/storefront/internal/config"
	"github.com/katana-forge/storefront/internal/health"
	"github.com/katana-forge/storefront/internal/metrics"
	service "github.com/katana-forge/storefront/internal/services"
	"github.com/katana-forge/storefront/internal/telemetry"
	"github.com/katana-forge/storefront/pkg/catalog"
	"github.com/katana-forge/storefront/pkg/sendgrid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	if cfg.Tracing.Enabled {
		shutdownTracing, err := telemetry.InitTracing(context.Background(), &cfg.Tracing)
		if err != nil {
			slog.Error("❌ Error initializing tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTracing(flushCtx); err != nil {
				slog.Warn("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
			}
		}()

		slog.Info("Tracing enabled", slog.String("endpoint", cfg.Tracing.Endpoint))
	}

	// Catalog listing cache (optional)
	var listCache cache.Cache

	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		listCache = cache.NewRedisCache(redisClient, &cfg.Cache)

		defer func() {
			if err := listCache.Close(); err != nil {
				slog.Warn("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		slog.Info("Catalog cache enabled", slog.String("addr", cfg.Cache.Addr))
	}

	// Order confirmation email (optional)
	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	backendClient := catalog.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Tracing.Enabled)
	carts := cart.NewRegistry()
	catalogService := service.NewCatalogService(backendClient, listCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(carts, catalogService)
	checkoutService := service.NewCheckoutService(backendClient, emailService)
	checkoutHandler := handlers.NewCheckoutHandler(carts, checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error building health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend.BaseURL),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products/seed", catalogHandler.SeedProducts())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
