package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	tsclient "github.com/adiii0209/Yatraa-sub000/internal/infrastructure/clients/typesense"
)

const (
	AttractionsCollection = "attractions"
	RestaurantsCollection = "restaurants"
)

// TypesenseAdapter indexes the catalog in Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ providers.CatalogIndexer = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// EnsureCollections creates the catalog collections that do not exist yet
func (a *TypesenseAdapter) EnsureCollections(ctx context.Context) error {
	for _, schema := range []*api.CollectionSchema{attractionSchema(), restaurantSchema()} {
		if _, err := a.client.Client().Collection(schema.Name).Retrieve(ctx); err == nil {
			log.Debug().Str("collection", schema.Name).Msg("Typesense collection already exists")
			continue
		}

		if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
			return fmt.Errorf("failed to create typesense collection %s: %w", schema.Name, err)
		}
		log.Info().Str("collection", schema.Name).Msg("Created Typesense collection")
	}
	return nil
}

// DropCollections deletes the catalog collections. Missing collections are
// logged and skipped.
func (a *TypesenseAdapter) DropCollections(ctx context.Context) {
	for _, name := range []string{AttractionsCollection, RestaurantsCollection} {
		if _, err := a.client.Client().Collection(name).Delete(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("Failed to delete Typesense collection")
			continue
		}
		log.Info().Str("collection", name).Msg("Deleted Typesense collection")
	}
}

// IndexAttractions upserts every attraction
func (a *TypesenseAdapter) IndexAttractions(ctx context.Context, attractions []*entities.Attraction) (int, error) {
	indexed := 0
	for _, attraction := range attractions {
		if _, err := a.client.Client().Collection(AttractionsCollection).Documents().Upsert(ctx, attractionDocument(attraction)); err != nil {
			return indexed, fmt.Errorf("failed to index attraction %d: %w", attraction.ID, err)
		}
		indexed++
	}
	return indexed, nil
}

// IndexRestaurants upserts every restaurant
func (a *TypesenseAdapter) IndexRestaurants(ctx context.Context, restaurants []*entities.Restaurant) (int, error) {
	indexed := 0
	for _, restaurant := range restaurants {
		if _, err := a.client.Client().Collection(RestaurantsCollection).Documents().Upsert(ctx, restaurantDocument(restaurant)); err != nil {
			return indexed, fmt.Errorf("failed to index restaurant %d: %w", restaurant.ID, err)
		}
		indexed++
	}
	return indexed, nil
}

func attractionSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: AttractionsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
			{Name: "is_trending", Type: "bool", Facet: pointer.True()},
			{Name: "is_featured", Type: "bool", Facet: pointer.True()},
			{Name: "location", Type: "geopoint", Optional: pointer.True()},
		},
		DefaultSortingField: pointer.String("review_count"),
	}
}

func restaurantSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: RestaurantsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "cuisine", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "price_range", Type: "string", Facet: pointer.True()},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
			{Name: "is_recommended", Type: "bool", Facet: pointer.True()},
			{Name: "location", Type: "geopoint", Optional: pointer.True()},
		},
		DefaultSortingField: pointer.String("review_count"),
	}
}

func attractionDocument(a *entities.Attraction) map[string]interface{} {
	doc := map[string]interface{}{
		"id":           strconv.FormatInt(a.ID, 10),
		"name":         a.Name,
		"description":  a.Description,
		"category":     a.Category,
		"city":         a.City,
		"rating":       parseRating(a.Rating),
		"review_count": a.ReviewCount,
		"is_trending":  a.IsTrending,
		"is_featured":  a.IsFeatured,
	}
	if loc, ok := geopoint(a.Latitude, a.Longitude); ok {
		doc["location"] = loc
	}
	return doc
}

func restaurantDocument(r *entities.Restaurant) map[string]interface{} {
	doc := map[string]interface{}{
		"id":             strconv.FormatInt(r.ID, 10),
		"name":           r.Name,
		"description":    r.Description,
		"cuisine":        r.Cuisine,
		"city":           r.City,
		"price_range":    r.PriceRange,
		"rating":         parseRating(r.Rating),
		"review_count":   r.ReviewCount,
		"is_recommended": r.IsRecommended,
	}
	if loc, ok := geopoint(r.Latitude, r.Longitude); ok {
		doc["location"] = loc
	}
	return doc
}

func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// geopoint returns [lat, lon] when both coordinates are present and numeric
func geopoint(lat, lon *string) ([]float64, bool) {
	if lat == nil || lon == nil {
		return nil, false
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(*lat), 64)
	if err != nil {
		return nil, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(*lon), 64)
	if err != nil {
		return nil, false
	}
	return []float64{la, lo}, true
}
