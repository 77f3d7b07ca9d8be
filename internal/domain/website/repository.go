package website

import "context"

// Repository defines the persistence contract for websites. Lookup methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, site *Website) error
	Update(ctx context.Context, site *Website) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Website, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*Website, error)
	FindByAccountID(ctx context.Context, accountID uint) ([]*Website, error)

	// CountByAccountID feeds the CanAddWebsite guard.
	CountByAccountID(ctx context.Context, accountID uint) (int, error)
	ExistsByDomain(ctx context.Context, accountID uint, domain string) (bool, error)

	// IncrementTotalContacts bumps the lifetime display counter atomically.
	IncrementTotalContacts(ctx context.Context, id uint) error
}
