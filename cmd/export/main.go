package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/adapters/sqlexport"
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

	// Logs go to stderr so stdout carries only SQL
	observability.InitLoggerTo(os.Stderr, "yatraa-export", cfg.Server.Env)

	ctx := context.Background()

	store, err := seed.NewStore(ctx, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	snapshot, err := snapshotOf(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read catalog")
	}

	var out io.Writer = os.Stdout
	if cfg.Export.Output != "" {
		f, err := os.Create(cfg.Export.Output)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Export.Output).Msg("Failed to create output file")
		}
		defer f.Close()
		out = f
	}

	buf := bufio.NewWriter(out)
	if err := sqlexport.NewExporter().Write(buf, snapshot); err != nil {
		log.Fatal().Err(err).Msg("Failed to render export")
	}
	if err := buf.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Failed to write export")
	}

	log.Info().
		Int("attractions", len(snapshot.Attractions)).
		Int("events", len(snapshot.Events)).
		Int("offers", len(snapshot.Offers)).
		Int("restaurants", len(snapshot.Restaurants)).
		Str("output", outputName(cfg.Export.Output)).
		Msg("Catalog exported")
}

func snapshotOf(ctx context.Context, store *memory.Store) (sqlexport.Snapshot, error) {
	var (
		s   sqlexport.Snapshot
		err error
	)
	if s.Users, err = memory.NewUserAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Attractions, err = memory.NewAttractionAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Events, err = memory.NewEventAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Offers, err = memory.NewOfferAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Restaurants, err = memory.NewRestaurantAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Favorites, err = memory.NewFavoriteAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Bookings, err = memory.NewBookingAdapter(store).List(ctx); err != nil {
		return s, err
	}
	if s.Itineraries, err = memory.NewItineraryAdapter(store).List(ctx); err != nil {
		return s, err
	}
	return s, nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
