package webhook

import "context"

// Repository defines the persistence contract for webhooks and their
// delivery log. Lookup methods return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, wh *Webhook) error
	Update(ctx context.Context, wh *Webhook) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Webhook, error)
	FindByWebsiteID(ctx context.Context, websiteID uint) ([]*Webhook, error)

	// FindActiveByEvent returns active webhooks of a website subscribed to
	// the given event. This is the dispatcher's fan-out query.
	FindActiveByEvent(ctx context.Context, websiteID uint, event string) ([]*Webhook, error)

	// RecordDelivery persists a delivery log row and bumps the webhook's
	// call counters atomically.
	RecordDelivery(ctx context.Context, d *Delivery) error
	FindDeliveries(ctx context.Context, webhookID uint, offset, limit int) ([]*Delivery, error)
}
