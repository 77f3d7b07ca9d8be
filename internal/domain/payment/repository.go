package payment

import (
	"context"
	"time"
)

// Repository defines the persistence contract for payments. Lookup methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error

	FindByID(ctx context.Context, id uint) (*Payment, error)
	FindByOrderNo(ctx context.Context, orderNo string) (*Payment, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Payment, error)
	FindByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]*Payment, error)
	CountByAccountID(ctx context.Context, accountID uint) (int64, error)

	// FindExpiredPending returns pending orders whose TTL lapsed before
	// the given instant, for the expiry sweep.
	FindExpiredPending(ctx context.Context, before time.Time) ([]*Payment, error)
}
