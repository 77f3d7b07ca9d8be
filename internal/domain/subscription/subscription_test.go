package subscription

import (
	"testing"
	"time"

	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newFreeSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func newProSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub := newFreeSubscription(t)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	return sub
}

func reconstructWithStatus(t *testing.T, status vo.SubscriptionStatus) *Subscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := ReconstructSubscription(
		1, 10,
		vo.PlanPro, vo.BillingMonthly, status,
		LimitsFor(vo.PlanPro),
		0, 0,
		now, nil, nil,
		1, now, now,
	)
	require.NoError(t, err)
	return sub
}

// =====================================================================
// TestNewSubscription_*
// =====================================================================

func TestNewSubscription_Defaults(t *testing.T) {
	sub, err := NewSubscription(7)

	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Equal(t, uint(7), sub.AccountID())
	assert.Equal(t, vo.PlanFree, sub.Plan())
	assert.Equal(t, vo.BillingMonthly, sub.BillingPeriod())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, LimitsFor(vo.PlanFree), sub.Limits())
	assert.Equal(t, 0, sub.ContactsUsedThisMonth())
	assert.Equal(t, float64(0), sub.StorageUsedMB())
	assert.Nil(t, sub.ExpiresAt(), "free plan should never expire")
	assert.Nil(t, sub.CancelledAt())
	assert.Equal(t, 1, sub.Version())
}

func TestNewSubscription_ZeroAccountID(t *testing.T) {
	sub, err := NewSubscription(0)

	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, err.Error(), "account ID is required")
}

func TestReconstructSubscription_InvalidPlan(t *testing.T) {
	now := time.Now().UTC()
	sub, err := ReconstructSubscription(
		1, 10,
		vo.PlanID("enterprise"), vo.BillingMonthly, vo.StatusActive,
		LimitSet{}, 0, 0, now, nil, nil, 1, now, now,
	)

	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.Nil(t, sub)
}

func TestReconstructSubscription_NegativeCounter(t *testing.T) {
	now := time.Now().UTC()
	sub, err := ReconstructSubscription(
		1, 10,
		vo.PlanFree, vo.BillingMonthly, vo.StatusActive,
		LimitsFor(vo.PlanFree), -1, 0, now, nil, nil, 1, now, now,
	)

	assert.Error(t, err)
	assert.Nil(t, sub)
}

// =====================================================================
// TestApplyPlan_*
// =====================================================================

func TestApplyPlan_UpgradeToPro(t *testing.T) {
	sub := newFreeSubscription(t)
	sub.RecordContactUsage()
	sub.RecordContactUsage()
	require.NoError(t, sub.RecordStorageUsage(10))
	versionBefore := sub.Version()

	err := sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly)

	require.NoError(t, err)
	assert.Equal(t, vo.PlanPro, sub.Plan())
	assert.Equal(t, LimitsFor(vo.PlanPro), sub.Limits())
	assert.Equal(t, 2, sub.ContactsUsedThisMonth(), "upgrade must not reset counters")
	assert.Equal(t, float64(10), sub.StorageUsedMB(), "upgrade must not reset counters")
	require.NotNil(t, sub.ExpiresAt())
	assert.True(t, sub.ExpiresAt().After(time.Now().UTC()))
	assert.Greater(t, sub.Version(), versionBefore)
}

func TestApplyPlan_YearlyPeriodSetsLongerExpiry(t *testing.T) {
	monthly := newFreeSubscription(t)
	yearly := newFreeSubscription(t)

	require.NoError(t, monthly.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	require.NoError(t, yearly.ApplyPlan(vo.PlanPro, vo.BillingYearly))

	assert.True(t, yearly.ExpiresAt().After(*monthly.ExpiresAt()))
}

func TestApplyPlan_DowngradeToFreeClearsExpiry(t *testing.T) {
	sub := newProSubscription(t)
	sub.RecordContactUsage()

	err := sub.ApplyPlan(vo.PlanFree, vo.BillingMonthly)

	require.NoError(t, err)
	assert.Equal(t, vo.PlanFree, sub.Plan())
	assert.Nil(t, sub.ExpiresAt())
	assert.Equal(t, 1, sub.ContactsUsedThisMonth(), "downgrade must not reset counters")
	assert.Equal(t, LimitsFor(vo.PlanFree), sub.Limits())
}

func TestApplyPlan_UnknownPlan(t *testing.T) {
	sub := newFreeSubscription(t)

	err := sub.ApplyPlan(vo.PlanID("enterprise"), vo.BillingMonthly)

	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.Equal(t, vo.PlanFree, sub.Plan(), "failed apply must leave the ledger untouched")
}

func TestApplyPlan_ReactivatesCancelled(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusCancelled)

	err := sub.ApplyPlan(vo.PlanAgency, vo.BillingMonthly)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Nil(t, sub.CancelledAt())
}

func TestApplyPlan_SamePlanIsIdempotentOnLimits(t *testing.T) {
	sub := newProSubscription(t)
	sub.RecordContactUsage()

	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))

	assert.Equal(t, LimitsFor(vo.PlanPro), sub.Limits())
	assert.Equal(t, 1, sub.ContactsUsedThisMonth())
}

// =====================================================================
// TestUsageCounters_*
// =====================================================================

func TestRecordContactUsage_Increments(t *testing.T) {
	sub := newFreeSubscription(t)

	sub.RecordContactUsage()
	sub.RecordContactUsage()
	sub.RecordContactUsage()

	assert.Equal(t, 3, sub.ContactsUsedThisMonth())
}

func TestReleaseContactUsage_FloorsAtZero(t *testing.T) {
	sub := newFreeSubscription(t)
	sub.RecordContactUsage()

	sub.ReleaseContactUsage()
	sub.ReleaseContactUsage()

	assert.Equal(t, 0, sub.ContactsUsedThisMonth())
}

func TestRecordStorageUsage_Accumulates(t *testing.T) {
	sub := newFreeSubscription(t)

	require.NoError(t, sub.RecordStorageUsage(2.5))
	require.NoError(t, sub.RecordStorageUsage(1.5))

	assert.Equal(t, float64(4), sub.StorageUsedMB())
}

func TestRecordStorageUsage_NegativeDelta(t *testing.T) {
	sub := newFreeSubscription(t)

	err := sub.RecordStorageUsage(-1)

	assert.Error(t, err)
	assert.Equal(t, float64(0), sub.StorageUsedMB())
}

func TestReleaseStorageUsage_FloorsAtZero(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.RecordStorageUsage(3))

	require.NoError(t, sub.ReleaseStorageUsage(5))

	assert.Equal(t, float64(0), sub.StorageUsedMB())
}

func TestResetMonthlyCounters_ContactsOnly(t *testing.T) {
	sub := newFreeSubscription(t)
	sub.RecordContactUsage()
	require.NoError(t, sub.RecordStorageUsage(12))

	sub.ResetMonthlyCounters()

	assert.Equal(t, 0, sub.ContactsUsedThisMonth())
	assert.Equal(t, float64(12), sub.StorageUsedMB(), "storage is not a monthly counter")
}

// =====================================================================
// TestStatusTransitions_*
// =====================================================================

func TestCancel_PaidPlan(t *testing.T) {
	sub := newProSubscription(t)

	err := sub.Cancel()

	require.NoError(t, err)
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.NotNil(t, sub.CancelledAt())
	assert.Equal(t, vo.PlanPro, sub.Plan(), "cancel keeps the current plan until expiry")
}

func TestCancel_FreePlanRefused(t *testing.T) {
	sub := newFreeSubscription(t)

	err := sub.Cancel()

	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestCancel_AlreadyCancelledIsNoop(t *testing.T) {
	sub := newProSubscription(t)
	require.NoError(t, sub.Cancel())
	firstCancelledAt := sub.CancelledAt()

	err := sub.Cancel()

	require.NoError(t, err)
	assert.Equal(t, firstCancelledAt, sub.CancelledAt())
}

func TestSuspendAndReactivate(t *testing.T) {
	sub := newProSubscription(t)

	require.NoError(t, sub.Suspend())
	assert.Equal(t, vo.StatusSuspended, sub.Status())
	assert.False(t, sub.IsActive())

	require.NoError(t, sub.Reactivate())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.True(t, sub.IsActive())
}

func TestMarkAsExpired_FromActive(t *testing.T) {
	sub := newProSubscription(t)

	err := sub.MarkAsExpired()

	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, sub.Status())
	assert.False(t, sub.IsActive())
}

func TestMarkAsExpired_FromCancelledRefused(t *testing.T) {
	sub := newProSubscription(t)
	require.NoError(t, sub.Cancel())

	err := sub.MarkAsExpired()

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestIsExpired_PastExpiry(t *testing.T) {
	now := time.Now().UTC()
	past := now.AddDate(0, -1, 0)
	sub, err := ReconstructSubscription(
		1, 10,
		vo.PlanPro, vo.BillingMonthly, vo.StatusActive,
		LimitsFor(vo.PlanPro),
		0, 0,
		now.AddDate(0, -2, 0), &past, nil,
		1, now, now,
	)
	require.NoError(t, err)

	assert.True(t, sub.IsExpired())
	assert.False(t, sub.IsActive(), "a lapsed paid period denies service even while status is active")
}

// =====================================================================
// TestUsagePercent_*
// =====================================================================

func TestContactUsagePercent(t *testing.T) {
	sub := newFreeSubscription(t)
	for i := 0; i < 25; i++ {
		sub.RecordContactUsage()
	}

	assert.InDelta(t, 50.0, sub.ContactUsagePercent(), 0.001)
}

func TestStorageUsagePercent_CapsAtHundred(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.RecordStorageUsage(250))

	assert.Equal(t, 100.0, sub.StorageUsagePercent())
}

func TestUsagePercent_UnlimitedReportsZero(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.ApplyPlan(vo.PlanAgency, vo.BillingMonthly))
	sub.RecordContactUsage()

	// agency websites are unlimited; the contact quota is not, so only
	// exercise an unlimited dimension here via project-style limits.
	assert.Equal(t, 0.0, usagePercent(10, -1, true))
}
