package asset

import "context"

// Repository defines the persistence contract for assets. Lookup methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Asset, error)
	FindByWebsiteID(ctx context.Context, websiteID uint, offset, limit int) ([]*Asset, error)
	CountByWebsiteID(ctx context.Context, websiteID uint) (int64, error)
	SumSizeByWebsiteID(ctx context.Context, websiteID uint) (float64, error)
}
