package providers

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.ActivityEvent) error

	// Subscribe subscribes to events on a channel. The returned channel is
	// closed when ctx is done or the bus is closed.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ActivityEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelUserActivity carries every favorite, booking and itinerary change
const EventChannelUserActivity = "user:activity"
