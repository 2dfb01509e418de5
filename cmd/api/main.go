package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/cache"
	"github.com/adiii0209/Yatraa-sub000/internal/adapters/events"
	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/api/handlers"
	"github.com/adiii0209/Yatraa-sub000/internal/api/middleware"
	"github.com/adiii0209/Yatraa-sub000/internal/api/routes"
	"github.com/adiii0209/Yatraa-sub000/internal/application/services"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/clients/redis"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
	"github.com/adiii0209/Yatraa-sub000/internal/seed"
	"github.com/adiii0209/Yatraa-sub000/pkg/config"
	"github.com/adiii0209/Yatraa-sub000/pkg/secrets"
)

func main() {
	// Vault, when enabled, fills in secrets before the environment is read
	if _, err := secrets.ApplyVault(context.Background(), secrets.VaultConfigFromEnv()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load secrets from Vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// The store lives for the life of the process and is reseeded on every start
	store, err := seed.NewStore(ctx, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	attractionRepo := memory.NewAttractionAdapter(store)
	eventRepo := memory.NewEventAdapter(store)

	attractionService := services.NewAttractionService(attractionRepo)
	eventService := services.NewEventService(eventRepo, services.SystemClock)
	offerService := services.NewOfferService(memory.NewOfferAdapter(store), services.SystemClock)
	restaurantService := services.NewRestaurantService(memory.NewRestaurantAdapter(store))
	userRepo := memory.NewUserAdapter(store)
	defaultUser, err := seed.RequireUser(ctx, userRepo, cfg.Catalog.DefaultUserID)
	if err != nil {
		log.Fatal().Err(err).Msg("Catalog has no default user")
	}
	userService := services.NewUserService(userRepo)
	associationService := services.NewAssociationService(
		attractionRepo,
		eventRepo,
		memory.NewFavoriteAdapter(store),
		memory.NewBookingAdapter(store),
		memory.NewItineraryAdapter(store),
		services.SystemClock,
	)

	// Redis backs the response cache and the activity event bus. The API
	// works without it.
	var (
		cacheProvider            providers.CacheProvider
		eventBus                 providers.EventBus
		cacheInvalidationService *services.CacheInvalidationService
		cacheMiddleware          *middleware.CacheMiddleware
	)
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without response cache")
		} else {
			defer redisClient.Close()

			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
			associationService.SetEventBus(eventBus)

			cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)

			// Cached responses from a previous process describe a store that no
			// longer exists.
			if _, err := cacheInvalidationService.InvalidateAll(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to clear stale cache entries")
			}

			if err := cacheInvalidationService.Start(); err != nil {
				log.Warn().Err(err).Msg("Failed to start cache invalidation service")
			}

			cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics, middleware.DefaultCacheRules(cfg.Cache.TTLSeconds))
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Int("ttl_seconds", cfg.Cache.TTLSeconds).Msg("Response cache enabled")
		}
	}

	router := routes.NewRouter(
		handlers.NewAttractionHandler(attractionService),
		handlers.NewEventHandler(eventService),
		handlers.NewOfferHandler(offerService),
		handlers.NewRestaurantHandler(restaurantService),
		handlers.NewUserHandler(userService, associationService),
		cfg.Server.AllowedOrigins,
		cacheMiddleware,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Int64("default_user_id", defaultUser.ID).Str("default_user", defaultUser.Username).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
