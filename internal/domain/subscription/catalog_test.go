package subscription

import (
	"testing"

	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
)

func TestLimitsFor_FreePlan(t *testing.T) {
	limits := LimitsFor(vo.PlanFree)

	assert.Equal(t, 1, limits.WebsiteLimit)
	assert.Equal(t, 50, limits.MonthlyContactQuota)
	assert.Equal(t, 5, limits.ProjectLimit)
	assert.Equal(t, 100, limits.StorageQuotaMB)
	assert.False(t, limits.Analytics)
	assert.False(t, limits.Integrations)
	assert.False(t, limits.CustomDomain)
	assert.False(t, limits.WhiteLabel)
	assert.False(t, limits.PrioritySupport)
}

func TestLimitsFor_ProPlan(t *testing.T) {
	limits := LimitsFor(vo.PlanPro)

	assert.Equal(t, 3, limits.WebsiteLimit)
	assert.Equal(t, 500, limits.MonthlyContactQuota)
	assert.Equal(t, Unlimited, limits.ProjectLimit)
	assert.Equal(t, 1000, limits.StorageQuotaMB)
	assert.True(t, limits.Analytics)
	assert.True(t, limits.Integrations)
	assert.False(t, limits.CustomDomain)
	assert.False(t, limits.WhiteLabel)
	assert.False(t, limits.PrioritySupport)
}

func TestLimitsFor_AgencyPlan(t *testing.T) {
	limits := LimitsFor(vo.PlanAgency)

	assert.Equal(t, Unlimited, limits.WebsiteLimit)
	assert.Equal(t, 5000, limits.MonthlyContactQuota)
	assert.Equal(t, Unlimited, limits.ProjectLimit)
	assert.Equal(t, 10000, limits.StorageQuotaMB)
	assert.True(t, limits.Analytics)
	assert.True(t, limits.Integrations)
	assert.True(t, limits.CustomDomain)
	assert.True(t, limits.WhiteLabel)
	assert.True(t, limits.PrioritySupport)
}

func TestLimitsFor_UnknownPlanAdmitsNothing(t *testing.T) {
	limits := LimitsFor(vo.PlanID("enterprise"))

	assert.Equal(t, 0, limits.WebsiteLimit)
	assert.Equal(t, 0, limits.MonthlyContactQuota)
	assert.Equal(t, 0, limits.ProjectLimit)
	assert.Equal(t, 0, limits.StorageQuotaMB)
	assert.False(t, limits.Analytics)
}

func TestIsUnlimited(t *testing.T) {
	assert.True(t, IsUnlimited(Unlimited))
	assert.True(t, IsUnlimited(-5))
	assert.False(t, IsUnlimited(0))
	assert.False(t, IsUnlimited(100))
}

func TestPriceFor_KnownPlans(t *testing.T) {
	assert.Equal(t, int64(0), PriceFor(vo.PlanFree, vo.BillingMonthly))
	assert.Equal(t, int64(900), PriceFor(vo.PlanPro, vo.BillingMonthly))
	assert.Equal(t, int64(9000), PriceFor(vo.PlanPro, vo.BillingYearly))
	assert.Equal(t, int64(2900), PriceFor(vo.PlanAgency, vo.BillingMonthly))
	assert.Equal(t, int64(29000), PriceFor(vo.PlanAgency, vo.BillingYearly))
}

func TestPriceFor_UnknownPlanIsZero(t *testing.T) {
	assert.Equal(t, int64(0), PriceFor(vo.PlanID("enterprise"), vo.BillingMonthly))
}
