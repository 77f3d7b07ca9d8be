package subscription

import (
	"errors"
	"fmt"
)

var (
	// ErrSubscriptionNotFound signals a missing ledger row. Every account owns
	// exactly one subscription, so this is a data-integrity fault, never a
	// signal to create one inline.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrUnknownPlan             = errors.New("unknown plan")
	ErrPolicyViolation         = errors.New("policy violation")
	ErrFeatureNotAvailable     = errors.New("feature not available on this plan")
	ErrQuotaExceeded           = errors.New("quota exceeded")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

// QuotaError carries the ceiling that was hit and the usage at denial time,
// so the rejection payload can show both.
type QuotaError struct {
	Resource string
	Limit    int64
	Current  int64
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded: %s current=%d, limit=%d", e.Resource, e.Current, e.Limit)
}

func (e *QuotaError) Unwrap() error {
	return ErrQuotaExceeded
}

// NewQuotaError builds a QuotaError for the given metered resource.
func NewQuotaError(resource string, current, limit int64) *QuotaError {
	return &QuotaError{Resource: resource, Limit: limit, Current: current}
}
