package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/adapters/search"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/clients/typesense"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
	"github.com/adiii0209/Yatraa-sub000/internal/seed"
	"github.com/adiii0209/Yatraa-sub000/pkg/config"
	"github.com/adiii0209/Yatraa-sub000/pkg/secrets"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collections before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	// Vault, when enabled, fills in secrets before the environment is read
	if _, err := secrets.ApplyVault(context.Background(), secrets.VaultConfigFromEnv()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load secrets from Vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger("yatraa-indexer", cfg.Server.Env)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("Invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Typesense")
	}
	adapter := search.NewTypesenseAdapter(tsClient)

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		adapter.DropCollections(ctx)
	}

	for {
		if err := indexOnce(ctx, adapter); err != nil {
			if interval <= 0 {
				log.Fatal().Err(err).Msg("Reindex failed")
			}
			log.Error().Err(err).Msg("Reindex failed")
		}

		if interval <= 0 {
			return
		}

		log.Info().Dur("interval", interval).Msg("Reindex complete, waiting for next run")

		select {
		case <-ctx.Done():
			log.Info().Msg("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

// indexOnce seeds a fresh store and pushes its catalog to the indexer
func indexOnce(ctx context.Context, indexer providers.CatalogIndexer) error {
	store, err := seed.NewStore(ctx, time.Now())
	if err != nil {
		return err
	}

	if err := indexer.EnsureCollections(ctx); err != nil {
		return err
	}

	attractions, err := memory.NewAttractionAdapter(store).List(ctx)
	if err != nil {
		return err
	}
	restaurants, err := memory.NewRestaurantAdapter(store).List(ctx)
	if err != nil {
		return err
	}

	indexedAttractions, err := indexer.IndexAttractions(ctx, attractions)
	if err != nil {
		return fmt.Errorf("indexed %d of %d attractions: %w", indexedAttractions, len(attractions), err)
	}
	indexedRestaurants, err := indexer.IndexRestaurants(ctx, restaurants)
	if err != nil {
		return fmt.Errorf("indexed %d of %d restaurants: %w", indexedRestaurants, len(restaurants), err)
	}

	log.Info().
		Int("attractions", indexedAttractions).
		Int("restaurants", indexedRestaurants).
		Msg("Catalog indexed")
	return nil
}
