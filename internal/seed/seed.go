package seed

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Catalog is the literal dataset shipped with the binary.
type Catalog struct {
	Users       []entities.User       `yaml:"users"`
	Attractions []entities.Attraction `yaml:"attractions"`
	Events      []entities.Event      `yaml:"events"`
	Offers      []entities.Offer      `yaml:"offers"`
	Restaurants []entities.Restaurant `yaml:"restaurants"`
}

// Repositories are the write targets of Load
type Repositories struct {
	Users       repositories.UserRepository
	Attractions repositories.AttractionRepository
	Events      repositories.EventRepository
	Offers      repositories.OfferRepository
	Restaurants repositories.RestaurantRepository
}

// ForStore returns the repositories backed by store
func ForStore(store *memory.Store) Repositories {
	return Repositories{
		Users:       memory.NewUserAdapter(store),
		Attractions: memory.NewAttractionAdapter(store),
		Events:      memory.NewEventAdapter(store),
		Offers:      memory.NewOfferAdapter(store),
		Restaurants: memory.NewRestaurantAdapter(store),
	}
}

// Summary counts the records inserted per kind
type Summary struct {
	Users       int
	Attractions int
	Events      int
	Offers      int
	Restaurants int
}

// LoadCatalog parses the embedded fixtures. Files are read in name order and
// each contributes the sections it defines.
func LoadCatalog() (*Catalog, error) {
	names, err := fs.Glob(fixtures, "fixtures/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	sort.Strings(names)

	catalog := &Catalog{}
	for _, name := range names {
		data, err := fixtures.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var part Catalog
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		catalog.Users = append(catalog.Users, part.Users...)
		catalog.Attractions = append(catalog.Attractions, part.Attractions...)
		catalog.Events = append(catalog.Events, part.Events...)
		catalog.Offers = append(catalog.Offers, part.Offers...)
		catalog.Restaurants = append(catalog.Restaurants, part.Restaurants...)
	}

	for i := range catalog.Events {
		if err := catalog.Events[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid fixture: %w", err)
		}
	}

	return catalog, nil
}

// Load inserts the embedded catalog into repos. Records are inserted in
// fixture order, so on an empty store ids start at 1 and the default user is
// id 1. now stamps the users' createdAt.
func Load(ctx context.Context, repos Repositories, now time.Time) (*Summary, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return Apply(ctx, repos, catalog, now)
}

// Apply inserts catalog into repos. It refuses to run against a store that
// already has users.
func Apply(ctx context.Context, repos Repositories, catalog *Catalog, now time.Time) (*Summary, error) {
	existing, err := repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("store already seeded with %d users", len(existing))
	}

	summary := &Summary{}

	for _, u := range catalog.Users {
		u := u
		u.ID = 0
		if u.PreferredLanguage == "" {
			u.PreferredLanguage = entities.DefaultLanguage
		}
		u.CreatedAt = now
		if err := repos.Users.Create(ctx, &u); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
		summary.Users++
	}

	for _, a := range catalog.Attractions {
		a := a
		a.ID = 0
		if err := repos.Attractions.Create(ctx, &a); err != nil {
			return nil, fmt.Errorf("failed to seed attraction %s: %w", a.Name, err)
		}
		summary.Attractions++
	}

	for _, e := range catalog.Events {
		e := e
		e.ID = 0
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if err := repos.Events.Create(ctx, &e); err != nil {
			return nil, fmt.Errorf("failed to seed event %s: %w", e.Title, err)
		}
		summary.Events++
	}

	for _, o := range catalog.Offers {
		o := o
		o.ID = 0
		if err := repos.Offers.Create(ctx, &o); err != nil {
			return nil, fmt.Errorf("failed to seed offer %s: %w", o.Code, err)
		}
		summary.Offers++
	}

	for _, r := range catalog.Restaurants {
		r := r
		r.ID = 0
		if err := repos.Restaurants.Create(ctx, &r); err != nil {
			return nil, fmt.Errorf("failed to seed restaurant %s: %w", r.Name, err)
		}
		summary.Restaurants++
	}

	log.Info().
		Int("users", summary.Users).
		Int("attractions", summary.Attractions).
		Int("events", summary.Events).
		Int("offers", summary.Offers).
		Int("restaurants", summary.Restaurants).
		Msg("Catalog seeded")

	return summary, nil
}

// NewStore builds a fresh store and seeds it with the embedded catalog.
func NewStore(ctx context.Context, now time.Time) (*memory.Store, error) {
	store := memory.NewStore()
	if _, err := Load(ctx, ForStore(store), now); err != nil {
		return nil, err
	}
	return store, nil
}

// RequireUser returns userID from users and fails when the catalog does not
// contain it. The API acts as this user for every client.
func RequireUser(ctx context.Context, users repositories.UserRepository, userID int64) (*entities.User, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("default user %d is not in the catalog: %w", userID, err)
	}
	return user, nil
}
