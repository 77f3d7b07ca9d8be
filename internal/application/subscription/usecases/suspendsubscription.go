package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// SuspendSubscriptionUseCase is the administrative kill switch. A suspended
// subscription denies every guard until reactivated.
type SuspendSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewSuspendSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *SuspendSubscriptionUseCase {
	return &SuspendSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *SuspendSubscriptionUseCase) Execute(ctx context.Context, subscriptionID uint) error {
	sub, err := uc.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrSubscriptionNotFound
	}

	if err := sub.Suspend(); err != nil {
		return err
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Warnw("subscription suspended", "subscription_id", subscriptionID, "account_id", sub.AccountID())
	return nil
}
