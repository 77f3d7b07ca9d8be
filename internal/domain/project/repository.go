package project

import "context"

// Repository defines the persistence contract for projects. Lookup methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Project, error)
	FindBySlug(ctx context.Context, websiteID uint, slug string) (*Project, error)
	FindByWebsiteID(ctx context.Context, websiteID uint, offset, limit int) ([]*Project, error)
	FindPublishedByWebsiteID(ctx context.Context, websiteID uint) ([]*Project, error)

	// CountByWebsiteID feeds the CanAddProject guard; the project ceiling
	// is per website.
	CountByWebsiteID(ctx context.Context, websiteID uint) (int, error)
	ExistsBySlug(ctx context.Context, websiteID uint, slug string) (bool, error)
}
