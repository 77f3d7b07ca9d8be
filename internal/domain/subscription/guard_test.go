package subscription

import (
	"testing"

	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgencySubscription(t *testing.T) *Subscription {
	t.Helper()
	sub := newFreeSubscription(t)
	require.NoError(t, sub.ApplyPlan(vo.PlanAgency, vo.BillingMonthly))
	return sub
}

// =====================================================================
// TestCanAddWebsite_*
// =====================================================================

func TestCanAddWebsite_UnderLimit(t *testing.T) {
	sub := newFreeSubscription(t)

	assert.True(t, sub.CanAddWebsite(0))
}

func TestCanAddWebsite_AtLimitDenied(t *testing.T) {
	sub := newFreeSubscription(t)

	// free plan allows exactly one website
	assert.False(t, sub.CanAddWebsite(1))
}

func TestCanAddWebsite_Unlimited(t *testing.T) {
	sub := newAgencySubscription(t)

	assert.True(t, sub.CanAddWebsite(100000))
}

func TestCanAddWebsite_InactiveDenied(t *testing.T) {
	sub := newProSubscription(t)
	require.NoError(t, sub.Suspend())

	assert.False(t, sub.CanAddWebsite(0))
}

// =====================================================================
// TestCanAddProject_*
// =====================================================================

func TestCanAddProject_FreeBoundary(t *testing.T) {
	sub := newFreeSubscription(t)

	assert.True(t, sub.CanAddProject(4))
	assert.False(t, sub.CanAddProject(5))
}

func TestCanAddProject_ProUnlimited(t *testing.T) {
	sub := newProSubscription(t)

	assert.True(t, sub.CanAddProject(100000))
}

// =====================================================================
// TestCanReceiveContact_*
// =====================================================================

func TestCanReceiveContact_UnderQuota(t *testing.T) {
	sub := newFreeSubscription(t)
	for i := 0; i < 49; i++ {
		sub.RecordContactUsage()
	}

	assert.True(t, sub.CanReceiveContact())
}

func TestCanReceiveContact_AtQuotaDenied(t *testing.T) {
	sub := newFreeSubscription(t)
	for i := 0; i < 50; i++ {
		sub.RecordContactUsage()
	}

	assert.False(t, sub.CanReceiveContact())
}

func TestCanReceiveContact_ResetReopensAdmission(t *testing.T) {
	sub := newFreeSubscription(t)
	for i := 0; i < 50; i++ {
		sub.RecordContactUsage()
	}
	require.False(t, sub.CanReceiveContact())

	sub.ResetMonthlyCounters()

	assert.True(t, sub.CanReceiveContact())
}

func TestCanReceiveContact_CancelledDenied(t *testing.T) {
	sub := newProSubscription(t)
	require.NoError(t, sub.Cancel())

	assert.False(t, sub.CanReceiveContact())
}

// =====================================================================
// TestCanUploadFile_*
// =====================================================================

func TestCanUploadFile_ExactFitAllowed(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.RecordStorageUsage(90))

	// 90 + 10 == 100, landing exactly on the quota is allowed
	assert.True(t, sub.CanUploadFile(10))
}

func TestCanUploadFile_OverflowDenied(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.RecordStorageUsage(90))

	assert.False(t, sub.CanUploadFile(10.1))
}

func TestCanUploadFile_NegativeSizeDenied(t *testing.T) {
	sub := newFreeSubscription(t)

	assert.False(t, sub.CanUploadFile(-1))
}

func TestCanUploadFile_DenialChangesNothing(t *testing.T) {
	sub := newFreeSubscription(t)
	require.NoError(t, sub.RecordStorageUsage(99))

	require.False(t, sub.CanUploadFile(5))

	assert.Equal(t, float64(99), sub.StorageUsedMB())
	assert.Equal(t, 0, sub.ContactsUsedThisMonth())
}

// =====================================================================
// TestFeatureFlags_*
// =====================================================================

func TestFeatureFlags_PerPlan(t *testing.T) {
	free := newFreeSubscription(t)
	pro := newProSubscription(t)
	agency := newAgencySubscription(t)

	assert.False(t, free.HasAnalytics())
	assert.False(t, free.HasIntegrations())

	assert.True(t, pro.HasAnalytics())
	assert.True(t, pro.HasIntegrations())
	assert.False(t, pro.HasCustomDomain())
	assert.False(t, pro.HasWhiteLabel())

	assert.True(t, agency.HasCustomDomain())
	assert.True(t, agency.HasWhiteLabel())
}

func TestFeatureFlags_SuspendedDenied(t *testing.T) {
	sub := newAgencySubscription(t)
	require.NoError(t, sub.Suspend())

	assert.False(t, sub.HasAnalytics())
	assert.False(t, sub.HasIntegrations())
}
