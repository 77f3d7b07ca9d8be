package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type ReactivateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewReactivateSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ReactivateSubscriptionUseCase {
	return &ReactivateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ReactivateSubscriptionUseCase) Execute(ctx context.Context, subscriptionID uint) error {
	sub, err := uc.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrSubscriptionNotFound
	}

	if err := sub.Reactivate(); err != nil {
		return err
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription reactivated", "subscription_id", subscriptionID, "account_id", sub.AccountID())
	return nil
}
