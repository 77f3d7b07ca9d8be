package mappers

import (
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(sub *subscription.Subscription) *models.SubscriptionModel {
	limits := sub.Limits()

	return &models.SubscriptionModel{
		ID:            sub.ID(),
		AccountID:     sub.AccountID(),
		Plan:          sub.Plan().String(),
		BillingPeriod: sub.BillingPeriod().String(),
		Status:        sub.Status().String(),

		WebsiteLimit:        limits.WebsiteLimit,
		MonthlyContactQuota: limits.MonthlyContactQuota,
		ProjectLimit:        limits.ProjectLimit,
		StorageQuotaMB:      limits.StorageQuotaMB,

		Analytics:       limits.Analytics,
		Integrations:    limits.Integrations,
		CustomDomain:    limits.CustomDomain,
		WhiteLabel:      limits.WhiteLabel,
		PrioritySupport: limits.PrioritySupport,

		ContactsUsedThisMonth: sub.ContactsUsedThisMonth(),
		StorageUsedMB:         sub.StorageUsedMB(),

		StartedAt:   sub.StartedAt(),
		ExpiresAt:   sub.ExpiresAt(),
		CancelledAt: sub.CancelledAt(),

		Version:   sub.Version(),
		CreatedAt: sub.CreatedAt(),
		UpdatedAt: sub.UpdatedAt(),
	}
}

func SubscriptionToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	plan, err := vo.NewPlanID(model.Plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan in storage: %w", err)
	}

	period, err := vo.NewBillingPeriod(model.BillingPeriod)
	if err != nil {
		return nil, fmt.Errorf("invalid billing period in storage: %w", err)
	}

	limits := subscription.LimitSet{
		WebsiteLimit:        model.WebsiteLimit,
		MonthlyContactQuota: model.MonthlyContactQuota,
		ProjectLimit:        model.ProjectLimit,
		StorageQuotaMB:      model.StorageQuotaMB,
		Analytics:           model.Analytics,
		Integrations:        model.Integrations,
		CustomDomain:        model.CustomDomain,
		WhiteLabel:          model.WhiteLabel,
		PrioritySupport:     model.PrioritySupport,
	}

	return subscription.ReconstructSubscription(
		model.ID, model.AccountID,
		plan, period, vo.SubscriptionStatus(model.Status),
		limits,
		model.ContactsUsedThisMonth, model.StorageUsedMB,
		model.StartedAt, model.ExpiresAt, model.CancelledAt,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}
