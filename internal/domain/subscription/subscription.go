package subscription

import (
	"fmt"
	"time"

	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

// Subscription is the aggregate root for an account's entitlements and live
// usage counters. Every account owns exactly one for its lifetime; it is
// created in the same transaction as the account and deleted only when the
// account is deleted.
//
// The limits snapshot is only ever mutated by ApplyPlan; the counters are only
// ever mutated by the usage-recording operations and the monthly reset.
type Subscription struct {
	id        uint
	accountID uint

	plan          vo.PlanID
	billingPeriod vo.BillingPeriod
	status        vo.SubscriptionStatus

	limits LimitSet

	contactsUsedThisMonth int
	storageUsedMB         float64

	startedAt   time.Time
	expiresAt   *time.Time
	cancelledAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates the default subscription provisioned at account
// creation: free plan, monthly period, active status, zero counters.
func NewSubscription(accountID uint) (*Subscription, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		accountID:     accountID,
		plan:          vo.PlanFree,
		billingPeriod: vo.BillingMonthly,
		status:        vo.StatusActive,
		limits:        LimitsFor(vo.PlanFree),
		startedAt:     now,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, accountID uint,
	plan vo.PlanID,
	billingPeriod vo.BillingPeriod,
	status vo.SubscriptionStatus,
	limits LimitSet,
	contactsUsedThisMonth int,
	storageUsedMB float64,
	startedAt time.Time,
	expiresAt, cancelledAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, plan)
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if contactsUsedThisMonth < 0 {
		return nil, fmt.Errorf("contact counter cannot be negative")
	}
	if storageUsedMB < 0 {
		return nil, fmt.Errorf("storage counter cannot be negative")
	}

	return &Subscription{
		id:                    id,
		accountID:             accountID,
		plan:                  plan,
		billingPeriod:         billingPeriod,
		status:                status,
		limits:                limits,
		contactsUsedThisMonth: contactsUsedThisMonth,
		storageUsedMB:         storageUsedMB,
		startedAt:             startedAt,
		expiresAt:             expiresAt,
		cancelledAt:           cancelledAt,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) AccountID() uint {
	return s.accountID
}

func (s *Subscription) Plan() vo.PlanID {
	return s.plan
}

func (s *Subscription) BillingPeriod() vo.BillingPeriod {
	return s.billingPeriod
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

// Limits returns the entitlement snapshot copied from the catalog at the last
// plan assignment.
func (s *Subscription) Limits() LimitSet {
	return s.limits
}

func (s *Subscription) ContactsUsedThisMonth() int {
	return s.contactsUsedThisMonth
}

func (s *Subscription) StorageUsedMB() float64 {
	return s.storageUsedMB
}

func (s *Subscription) StartedAt() time.Time {
	return s.startedAt
}

func (s *Subscription) ExpiresAt() *time.Time {
	return s.expiresAt
}

func (s *Subscription) CancelledAt() *time.Time {
	return s.cancelledAt
}

func (s *Subscription) Version() int {
	return s.version
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// ApplyPlan re-derives the limits snapshot from the catalog for the given
// plan and billing period. Counters are left untouched. For paid plans the
// expiry is advanced by one billing period; the free plan never expires.
//
// Callers must only invoke this for paid plans after the payment capture has
// confirmed; the upgrade request itself never applies a paid plan.
func (s *Subscription) ApplyPlan(plan vo.PlanID, period vo.BillingPeriod) error {
	if !plan.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownPlan, plan)
	}
	if !period.IsValid() {
		return fmt.Errorf("invalid billing period: %s", period)
	}

	now := biztime.NowUTC()

	s.plan = plan
	s.billingPeriod = period
	s.limits = LimitsFor(plan)

	if plan.IsPaid() {
		expires := now.AddDate(0, period.Months(), 0)
		s.expiresAt = &expires
	} else {
		s.expiresAt = nil
	}

	// A completed plan assignment reactivates a cancelled, suspended or
	// expired subscription.
	if s.status != vo.StatusActive {
		s.status = vo.StatusActive
	}
	s.cancelledAt = nil

	s.updatedAt = now
	s.version++

	return nil
}

// RecordContactUsage increments the monthly contact counter. Callers must
// only invoke this after the contact message has been durably committed.
func (s *Subscription) RecordContactUsage() {
	s.contactsUsedThisMonth++
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// ReleaseContactUsage returns one admitted contact slot when the message
// write failed after admission. The counter never goes below zero.
func (s *Subscription) ReleaseContactUsage() {
	if s.contactsUsedThisMonth > 0 {
		s.contactsUsedThisMonth--
	}
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// RecordStorageUsage adds deltaMB to the storage counter after a file has
// been durably stored.
func (s *Subscription) RecordStorageUsage(deltaMB float64) error {
	if deltaMB < 0 {
		return fmt.Errorf("storage delta cannot be negative")
	}
	s.storageUsedMB += deltaMB
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// ReleaseStorageUsage subtracts deltaMB from the storage counter when a
// stored file is deleted. The counter never goes below zero.
func (s *Subscription) ReleaseStorageUsage(deltaMB float64) error {
	if deltaMB < 0 {
		return fmt.Errorf("storage delta cannot be negative")
	}
	s.storageUsedMB -= deltaMB
	if s.storageUsedMB < 0 {
		s.storageUsedMB = 0
	}
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// ResetMonthlyCounters zeroes the monthly contact counter at a billing-month
// boundary. Storage usage is a persistent high-water mark and is not reset.
func (s *Subscription) ResetMonthlyCounters() {
	s.contactsUsedThisMonth = 0
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// Cancel marks the subscription cancelled and stamps cancelledAt.
// The free plan cannot be cancelled.
func (s *Subscription) Cancel() error {
	if s.plan.IsFree() {
		return fmt.Errorf("%w: cannot cancel the free plan", ErrPolicyViolation)
	}
	if s.status == vo.StatusCancelled {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status.String(), vo.StatusCancelled.String())
	}

	now := biztime.NowUTC()
	s.status = vo.StatusCancelled
	s.cancelledAt = &now
	s.updatedAt = now
	s.version++

	return nil
}

// Suspend is an administrative transition out of active.
func (s *Subscription) Suspend() error {
	if s.status == vo.StatusSuspended {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusSuspended) {
		return ErrInvalidTransition(s.status.String(), vo.StatusSuspended.String())
	}

	s.status = vo.StatusSuspended
	s.updatedAt = biztime.NowUTC()
	s.version++

	return nil
}

// Reactivate returns a cancelled, suspended or expired subscription to active.
func (s *Subscription) Reactivate() error {
	if s.status == vo.StatusActive {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return ErrInvalidTransition(s.status.String(), vo.StatusActive.String())
	}

	s.status = vo.StatusActive
	s.cancelledAt = nil
	s.updatedAt = biztime.NowUTC()
	s.version++

	return nil
}

// MarkAsExpired is the time-driven transition applied when a paid period
// lapses without renewal.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return ErrInvalidTransition(s.status.String(), vo.StatusExpired.String())
	}

	s.status = vo.StatusExpired
	s.updatedAt = biztime.NowUTC()
	s.version++

	return nil
}

// IsExpired checks the paid-period expiry against the clock.
func (s *Subscription) IsExpired() bool {
	if s.expiresAt == nil {
		return false
	}
	return biztime.NowUTC().After(*s.expiresAt)
}

// IsActive reports whether metered actions may be admitted.
func (s *Subscription) IsActive() bool {
	return s.status.CanUseService() && !s.IsExpired()
}

// ContactUsagePercent returns the share of the monthly contact quota consumed,
// in [0, 100]. Unlimited quotas report zero.
func (s *Subscription) ContactUsagePercent() float64 {
	return usagePercent(float64(s.contactsUsedThisMonth), float64(s.limits.MonthlyContactQuota), IsUnlimited(s.limits.MonthlyContactQuota))
}

// StorageUsagePercent returns the share of the storage quota consumed.
func (s *Subscription) StorageUsagePercent() float64 {
	return usagePercent(s.storageUsedMB, float64(s.limits.StorageQuotaMB), IsUnlimited(s.limits.StorageQuotaMB))
}

func usagePercent(used, limit float64, unlimited bool) float64 {
	if unlimited || limit <= 0 {
		return 0
	}
	pct := used / limit * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.accountID == 0 {
		return fmt.Errorf("account ID is required")
	}
	if !s.plan.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownPlan, s.plan)
	}
	if !s.billingPeriod.IsValid() {
		return fmt.Errorf("invalid billing period: %s", s.billingPeriod)
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.contactsUsedThisMonth < 0 {
		return fmt.Errorf("contact counter cannot be negative")
	}
	if s.storageUsedMB < 0 {
		return fmt.Errorf("storage counter cannot be negative")
	}
	return nil
}
