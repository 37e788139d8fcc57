// Package main is the entry point for the package pricing aggregation service.
//
//	@title						Package Pricing Aggregation API
//	@version					1.0.0
//	@description				A travel package pricing service that composes static package prices with live hotel rates fetched from the TBO hotel API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/package-pricing/package-pricing-and-aggregation-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/package-pricing/package-pricing-and-aggregation-engine/docs"

	// Application layers
	pricinghttp "github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/http"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/http/middleware"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/provider/tbo"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/cache"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/config"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/storage"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "pricing-engine",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("provider_enabled", cfg.Provider.Enabled).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()

	// Static catalog
	store := storage.NewMemoryStore()
	if err := store.LoadCatalog(cfg.Catalog.Path); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}

	// Rate cache, with the backend selected by config
	rateCache, stopEviction := setupCache(cfg, clock, log)
	defer stopEviction()

	// Live rate provider
	var rates domain.RateClient
	if cfg.Provider.Enabled {
		rates = tbo.NewClient(cfg.Provider.TBOBaseURL, cfg.Provider.TBOAPIKey,
			tbo.WithTimeout(cfg.Timeouts.PerQuote),
			tbo.WithClock(clock),
			tbo.WithLogger(log),
		)
	} else {
		log.Warn().Msg("Live rate provider disabled, pricing from static data only")
	}

	// Use cases
	pricingService := usecase.NewPricingService(store, rates, rateCache, clock, log, &usecase.Config{
		GlobalTimeout:  cfg.Timeouts.GlobalPricing,
		QuoteTimeout:   cfg.Timeouts.PerQuote,
		Nationality:    cfg.Provider.Nationality,
		ServiceFeeRate: cfg.Pricing.ServiceFeeRate,
	})
	bookingService := usecase.NewBookingService(rates, log)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware and routes
	middleware.Setup(e, log.Logger)
	pricinghttp.RegisterRoutes(e,
		pricinghttp.NewPricingHandler(pricingService),
		pricinghttp.NewBookingHandler(bookingService),
	)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupCache builds the rate cache on the configured backend and, for the
// in-memory store, starts the background eviction loop. The returned stop
// function halts the loop.
func setupCache(cfg *config.Config, clock timeutil.Clock, log *logger.Logger) (*cache.RateCache, func()) {
	var store cache.Store
	stop := func() {}

	switch cfg.Cache.Backend {
	case "redis":
		// Redis expires keys server-side, no eviction loop needed
		store = cache.NewRedisStore(cfg.Cache.RedisAddr, clock, log)
	default:
		memStore := cache.NewMemoryStore(clock)
		store = memStore

		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(cfg.Cache.EvictInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if removed := memStore.EvictExpired(context.Background()); removed > 0 {
						log.Debug().Int("removed", removed).Msg("Evicted expired cache entries")
					}
				case <-done:
					return
				}
			}
		}()
		stop = func() { close(done) }
	}

	rateCache := cache.New(store,
		cache.WithSearchTTL(cfg.Cache.SearchTTL),
		cache.WithHotelMetaTTL(cfg.Cache.HotelMetaTTL),
	)
	return rateCache, stop
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
