package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, accountID uint) error {
	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "account_id", accountID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrSubscriptionNotFound
	}

	if err := sub.Cancel(); err != nil {
		return err
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", sub.ID(),
		"account_id", accountID,
		"plan", sub.Plan(),
	)

	return nil
}
