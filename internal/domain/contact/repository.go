package contact

import "context"

// ListFilter narrows owner-side message listings.
type ListFilter struct {
	WebsiteID uint
	Status    MessageStatus
	Search    string
}

// Repository defines the persistence contract for contact messages. Lookup
// methods return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	Update(ctx context.Context, msg *Message) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Message, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Message, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	CountByWebsiteID(ctx context.Context, websiteID uint) (int64, error)
}
