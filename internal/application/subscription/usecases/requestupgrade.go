package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/subscription/dto"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type RequestUpgradeCommand struct {
	AccountID     uint
	Plan          string
	BillingPeriod string
}

// RequestUpgradeUseCase decides how a plan change proceeds. A free target is
// applied immediately. A paid target produces a payment-required decision and
// leaves the subscription untouched; the plan is applied only when the payment
// capture confirms.
type RequestUpgradeUseCase struct {
	subscriptionRepo subscription.Repository
	applyPlan        *ApplyPlanUseCase
	logger           logger.Interface
}

func NewRequestUpgradeUseCase(
	subscriptionRepo subscription.Repository,
	applyPlan *ApplyPlanUseCase,
	logger logger.Interface,
) *RequestUpgradeUseCase {
	return &RequestUpgradeUseCase{
		subscriptionRepo: subscriptionRepo,
		applyPlan:        applyPlan,
		logger:           logger,
	}
}

func (uc *RequestUpgradeUseCase) Execute(ctx context.Context, cmd RequestUpgradeCommand) (*dto.UpgradeDecisionDTO, error) {
	plan, err := vo.NewPlanID(cmd.Plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrUnknownPlan, cmd.Plan)
	}
	period, err := vo.NewBillingPeriod(cmd.BillingPeriod)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	// Requesting the plan already held, on the same billing period, is a
	// no-op the account would otherwise pay for. A lapsed subscription may
	// re-request its old plan.
	if sub.Status() == vo.StatusActive && sub.Plan() == plan && sub.BillingPeriod() == period {
		return nil, fmt.Errorf("%w: already on plan %s (%s)", subscription.ErrPolicyViolation, plan, period)
	}

	if plan.IsPaid() {
		amount := subscription.PriceFor(plan, period)
		uc.logger.Infow("upgrade requires payment",
			"account_id", cmd.AccountID,
			"plan", plan,
			"billing_period", period,
			"amount_cents", amount,
		)
		return &dto.UpgradeDecisionDTO{
			PaymentRequired: true,
			AmountCents:     amount,
			Currency:        "USD",
			Plan:            plan.String(),
			BillingPeriod:   period.String(),
		}, nil
	}

	// Downgrade to free takes effect immediately.
	updated, err := uc.applyPlan.Execute(ctx, ApplyPlanCommand{
		SubscriptionID: sub.ID(),
		Plan:           plan.String(),
		BillingPeriod:  period.String(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.UpgradeDecisionDTO{
		PaymentRequired: false,
		Plan:            plan.String(),
		BillingPeriod:   period.String(),
		Subscription:    updated,
	}, nil
}
