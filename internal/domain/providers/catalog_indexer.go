package providers

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// CatalogIndexer pushes catalog records into an external search engine
type CatalogIndexer interface {
	// EnsureCollections creates the attraction and restaurant collections if missing
	EnsureCollections(ctx context.Context) error

	// IndexAttractions upserts attractions and returns how many were accepted
	IndexAttractions(ctx context.Context, attractions []*entities.Attraction) (int, error)

	// IndexRestaurants upserts restaurants and returns how many were accepted
	IndexRestaurants(ctx context.Context, restaurants []*entities.Restaurant) (int, error)
}
