package subscription

import (
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
)

// Unlimited is the sentinel meaning a limit is unconstrained.
const Unlimited = -1

// IsUnlimited reports whether a limit value means "no ceiling".
// All limit comparisons must consult this before arithmetic comparison.
func IsUnlimited(n int) bool {
	return n < 0
}

// LimitSet is the typed snapshot of entitlements attached to a plan.
// It is copied onto the subscription at plan-assignment time so historical
// limits survive later catalog changes.
type LimitSet struct {
	WebsiteLimit        int
	MonthlyContactQuota int
	ProjectLimit        int
	StorageQuotaMB      int

	Analytics       bool
	Integrations    bool
	CustomDomain    bool
	WhiteLabel      bool
	PrioritySupport bool
}

// planLimits is the compiled-in entitlement catalog.
var planLimits = map[vo.PlanID]LimitSet{
	vo.PlanFree: {
		WebsiteLimit:        1,
		MonthlyContactQuota: 50,
		ProjectLimit:        5,
		StorageQuotaMB:      100,
	},
	vo.PlanPro: {
		WebsiteLimit:        3,
		MonthlyContactQuota: 500,
		ProjectLimit:        Unlimited,
		StorageQuotaMB:      1000,
		Analytics:           true,
		Integrations:        true,
	},
	vo.PlanAgency: {
		WebsiteLimit:        Unlimited,
		MonthlyContactQuota: 5000,
		ProjectLimit:        Unlimited,
		StorageQuotaMB:      10000,
		Analytics:           true,
		Integrations:        true,
		CustomDomain:        true,
		WhiteLabel:          true,
		PrioritySupport:     true,
	},
}

// LimitsFor returns the catalog entitlements for a plan. It is a pure lookup
// with no error path; callers must validate the plan identifier first. An
// unknown plan yields the zero LimitSet, which admits nothing.
func LimitsFor(plan vo.PlanID) LimitSet {
	return planLimits[plan]
}

// planPricing is the price table in cents, keyed by plan and billing period.
var planPricing = map[vo.PlanID]map[vo.BillingPeriod]int64{
	vo.PlanFree: {
		vo.BillingMonthly: 0,
		vo.BillingYearly:  0,
	},
	vo.PlanPro: {
		vo.BillingMonthly: 900,
		vo.BillingYearly:  9000,
	},
	vo.PlanAgency: {
		vo.BillingMonthly: 2900,
		vo.BillingYearly:  29000,
	},
}

// PriceFor returns the price in cents for a plan and billing period.
// Callers must validate both identifiers first.
func PriceFor(plan vo.PlanID, period vo.BillingPeriod) int64 {
	return planPricing[plan][period]
}
