package routes

import (
	"net/http"

	"github.com/adiii0209/Yatraa-sub000/internal/api/handlers"
	"github.com/adiii0209/Yatraa-sub000/internal/api/middleware"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	attractionHandler *handlers.AttractionHandler
	eventHandler      *handlers.EventHandler
	offerHandler      *handlers.OfferHandler
	restaurantHandler *handlers.RestaurantHandler
	userHandler       *handlers.UserHandler

	allowedOrigins  []string
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	attractionHandler *handlers.AttractionHandler,
	eventHandler *handlers.EventHandler,
	offerHandler *handlers.OfferHandler,
	restaurantHandler *handlers.RestaurantHandler,
	userHandler *handlers.UserHandler,
	allowedOrigins []string,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		attractionHandler: attractionHandler,
		eventHandler:      eventHandler,
		offerHandler:      offerHandler,
		restaurantHandler: restaurantHandler,
		userHandler:       userHandler,

		allowedOrigins:  allowedOrigins,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", handlers.Health)

	// Attraction endpoints
	r.mux.HandleFunc("GET /api/attractions", r.attractionHandler.ListAttractions)
	r.mux.HandleFunc("GET /api/attractions/trending", r.attractionHandler.ListTrending)
	r.mux.HandleFunc("GET /api/attractions/featured", r.attractionHandler.ListFeatured)
	r.mux.HandleFunc("GET /api/attractions/search", r.attractionHandler.SearchAttractions)
	r.mux.HandleFunc("GET /api/attractions/{id}", r.attractionHandler.GetAttraction)

	// Event endpoints
	r.mux.HandleFunc("GET /api/events", r.eventHandler.ListEvents)
	r.mux.HandleFunc("GET /api/events/upcoming", r.eventHandler.ListUpcoming)
	r.mux.HandleFunc("GET /api/events/range", r.eventHandler.ListByDateRange)
	r.mux.HandleFunc("GET /api/events/category/{category}", r.eventHandler.ListByCategory)
	r.mux.HandleFunc("GET /api/events/{id}", r.eventHandler.GetEvent)

	// Offer endpoints
	r.mux.HandleFunc("GET /api/offers", r.offerHandler.ListOffers)
	r.mux.HandleFunc("GET /api/offers/active", r.offerHandler.ListActive)
	r.mux.HandleFunc("GET /api/offers/category/{category}", r.offerHandler.ListByCategory)
	r.mux.HandleFunc("GET /api/offers/code/{code}", r.offerHandler.GetOfferByCode)
	r.mux.HandleFunc("GET /api/offers/{id}", r.offerHandler.GetOffer)

	// Restaurant endpoints
	r.mux.HandleFunc("GET /api/restaurants", r.restaurantHandler.ListRestaurants)
	r.mux.HandleFunc("GET /api/restaurants/recommended", r.restaurantHandler.ListRecommended)
	r.mux.HandleFunc("GET /api/restaurants/search", r.restaurantHandler.SearchRestaurants)
	r.mux.HandleFunc("GET /api/restaurants/{id}", r.restaurantHandler.GetRestaurant)

	// User endpoints
	r.mux.HandleFunc("GET /api/user/{id}", r.userHandler.GetUser)

	r.mux.HandleFunc("GET /api/user/{userId}/favorites", r.userHandler.GetFavorites)
	r.mux.HandleFunc("POST /api/user/{userId}/favorites", r.userHandler.AddFavorite)
	r.mux.HandleFunc("GET /api/user/{userId}/favorites/{attractionId}", r.userHandler.IsFavorite)
	r.mux.HandleFunc("DELETE /api/user/{userId}/favorites/{attractionId}", r.userHandler.RemoveFavorite)

	r.mux.HandleFunc("GET /api/user/{userId}/bookings", r.userHandler.GetBookings)
	r.mux.HandleFunc("GET /api/user/{userId}/bookings/records", r.userHandler.GetBookingRecords)
	r.mux.HandleFunc("POST /api/user/{userId}/bookings", r.userHandler.CreateBooking)
	r.mux.HandleFunc("POST /api/user/{userId}/bookings/{bookingId}/cancel", r.userHandler.CancelBooking)

	r.mux.HandleFunc("GET /api/user/{userId}/itinerary", r.userHandler.GetItinerary)
	r.mux.HandleFunc("GET /api/user/{userId}/itinerary/entries", r.userHandler.GetItineraryEntries)
	r.mux.HandleFunc("POST /api/user/{userId}/itinerary", r.userHandler.AddToItinerary)
	r.mux.HandleFunc("DELETE /api/user/{userId}/itinerary/{attractionId}", r.userHandler.RemoveFromItinerary)

	// Apply middleware in reverse order (last middleware wraps first).
	// The cache sits inside compression so stored bodies are plain JSON, and
	// CORS sits outside the cache so HITs carry CORS headers too.
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.RequestID(handler)

	return handler
}
