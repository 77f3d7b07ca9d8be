package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/subscription/dto"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type ApplyPlanCommand struct {
	SubscriptionID uint
	Plan           string
	BillingPeriod  string
}

// ApplyPlanUseCase re-derives the subscription's limits from the catalog.
// For paid plans this runs only after a payment capture confirms; free
// downgrades call it directly.
type ApplyPlanUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewApplyPlanUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ApplyPlanUseCase {
	return &ApplyPlanUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ApplyPlanUseCase) Execute(ctx context.Context, cmd ApplyPlanCommand) (*dto.SubscriptionDTO, error) {
	plan, err := vo.NewPlanID(cmd.Plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrUnknownPlan, cmd.Plan)
	}
	period, err := vo.NewBillingPeriod(cmd.BillingPeriod)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	previousPlan := sub.Plan()
	if err := sub.ApplyPlan(plan, period); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("plan applied",
		"subscription_id", sub.ID(),
		"account_id", sub.AccountID(),
		"previous_plan", previousPlan,
		"plan", plan,
		"billing_period", period,
	)

	return dto.ToSubscriptionDTO(sub), nil
}
