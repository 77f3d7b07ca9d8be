package account

import "context"

// Repository defines the persistence contract for accounts. Lookup methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, acc *Account) error
	Update(ctx context.Context, acc *Account) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
