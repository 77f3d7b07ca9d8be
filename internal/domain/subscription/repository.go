package subscription

import (
	"context"
	"time"
)

// Repository defines the persistence contract for subscriptions.
//
// Lookup methods return (nil, nil) when no row matches; errors are reserved
// for infrastructure failures.
//
// The atomic counter operations exist because usage recording races with
// itself: two concurrent submissions against the same subscription must not
// both be admitted through the last quota slot. Each is a single conditional
// UPDATE statement so the read-check-write happens inside the database.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Subscription, error)
	FindByAccountID(ctx context.Context, accountID uint) (*Subscription, error)

	List(ctx context.Context, offset, limit int) ([]*Subscription, error)
	Count(ctx context.Context) (int64, error)

	// IncrementContactUsage atomically increments the monthly contact
	// counter of an active subscription, but only while the counter is
	// still below the quota (or the quota is unlimited). It returns true
	// when the increment was admitted and false when the quota slot was
	// already taken.
	IncrementContactUsage(ctx context.Context, id uint) (bool, error)

	// ReleaseContactUsage atomically returns one admitted contact slot,
	// flooring the counter at zero. Used to compensate when the contact
	// write fails after admission; releases are never refused.
	ReleaseContactUsage(ctx context.Context, id uint) error

	// AddStorageUsage atomically adds deltaMB to the storage counter,
	// admitting only while the result stays within the quota. It returns
	// true when the addition was admitted.
	AddStorageUsage(ctx context.Context, id uint, deltaMB float64) (bool, error)

	// ReleaseStorageUsage atomically subtracts deltaMB from the storage
	// counter, flooring at zero. Releases are never refused.
	ReleaseStorageUsage(ctx context.Context, id uint, deltaMB float64) error

	// ResetMonthlyUsage zeroes the contact counters of every subscription
	// in one statement. Storage counters are untouched. Returns the number
	// of rows reset.
	ResetMonthlyUsage(ctx context.Context) (int64, error)

	// FindExpired returns active paid subscriptions whose expiry passed
	// before the given instant.
	FindExpired(ctx context.Context, before time.Time) ([]*Subscription, error)
}
