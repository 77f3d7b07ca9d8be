package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
)

type LimitSetDTO struct {
	Websites         int  `json:"websites"`
	ContactsPerMonth int  `json:"contacts_per_month"`
	ProjectsPerSite  int  `json:"projects_per_site"`
	StorageMB        int  `json:"storage_mb"`
	Analytics        bool `json:"analytics"`
	Integrations     bool `json:"integrations"`
	CustomDomain     bool `json:"custom_domain"`
	WhiteLabel       bool `json:"white_label"`
	PrioritySupport  bool `json:"priority_support"`
}

type UsageDTO struct {
	ContactsUsed   int     `json:"contacts_used"`
	ContactQuota   int     `json:"contact_quota"`
	ContactPercent float64 `json:"contact_percent"`
	StorageUsedMB  float64 `json:"storage_used_mb"`
	StorageQuotaMB int     `json:"storage_quota_mb"`
	StoragePercent float64 `json:"storage_percent"`
}

type SubscriptionDTO struct {
	ID            uint        `json:"id"`
	AccountID     uint        `json:"account_id"`
	Plan          string      `json:"plan"`
	BillingPeriod string      `json:"billing_period"`
	Status        string      `json:"status"`
	Limits        LimitSetDTO `json:"limits"`
	Usage         UsageDTO    `json:"usage"`
	IsActive      bool        `json:"is_active"`
	StartedAt     time.Time   `json:"started_at"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
	CancelledAt   *time.Time  `json:"cancelled_at,omitempty"`
}

type PlanDTO struct {
	ID                string      `json:"id"`
	Limits            LimitSetDTO `json:"limits"`
	MonthlyPriceCents int64       `json:"monthly_price_cents"`
	YearlyPriceCents  int64       `json:"yearly_price_cents"`
}

// UpgradeDecisionDTO is the outcome of an upgrade request. When the target
// plan is paid, PaymentRequired is true and no plan change has happened yet;
// the caller proceeds through the payment flow.
type UpgradeDecisionDTO struct {
	PaymentRequired bool             `json:"payment_required"`
	AmountCents     int64            `json:"amount_cents,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Plan            string           `json:"plan"`
	BillingPeriod   string           `json:"billing_period"`
	Subscription    *SubscriptionDTO `json:"subscription,omitempty"`
}

func ToLimitSetDTO(l subscription.LimitSet) LimitSetDTO {
	return LimitSetDTO{
		Websites:         l.WebsiteLimit,
		ContactsPerMonth: l.MonthlyContactQuota,
		ProjectsPerSite:  l.ProjectLimit,
		StorageMB:        l.StorageQuotaMB,
		Analytics:        l.Analytics,
		Integrations:     l.Integrations,
		CustomDomain:     l.CustomDomain,
		WhiteLabel:       l.WhiteLabel,
		PrioritySupport:  l.PrioritySupport,
	}
}

func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	limits := sub.Limits()
	return &SubscriptionDTO{
		ID:            sub.ID(),
		AccountID:     sub.AccountID(),
		Plan:          sub.Plan().String(),
		BillingPeriod: sub.BillingPeriod().String(),
		Status:        sub.Status().String(),
		Limits:        ToLimitSetDTO(limits),
		Usage: UsageDTO{
			ContactsUsed:   sub.ContactsUsedThisMonth(),
			ContactQuota:   limits.MonthlyContactQuota,
			ContactPercent: sub.ContactUsagePercent(),
			StorageUsedMB:  sub.StorageUsedMB(),
			StorageQuotaMB: limits.StorageQuotaMB,
			StoragePercent: sub.StorageUsagePercent(),
		},
		IsActive:    sub.IsActive(),
		StartedAt:   sub.StartedAt(),
		ExpiresAt:   sub.ExpiresAt(),
		CancelledAt: sub.CancelledAt(),
	}
}

func ToPlanDTO(plan vo.PlanID) *PlanDTO {
	return &PlanDTO{
		ID:                plan.String(),
		Limits:            ToLimitSetDTO(subscription.LimitsFor(plan)),
		MonthlyPriceCents: subscription.PriceFor(plan, vo.BillingMonthly),
		YearlyPriceCents:  subscription.PriceFor(plan, vo.BillingYearly),
	}
}
