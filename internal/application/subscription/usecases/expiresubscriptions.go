package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// ExpireSubscriptionsUseCase sweeps active paid subscriptions whose period
// lapsed and marks them expired. Run by the scheduler.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	expired, err := uc.subscriptionRepo.FindExpired(ctx, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to list expired subscriptions", "error", err)
		return 0, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	count := 0
	for _, sub := range expired {
		if err := sub.MarkAsExpired(); err != nil {
			uc.logger.Warnw("skipping non-expirable subscription", "error", err, "subscription_id", sub.ID())
			continue
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to persist expiry", "error", err, "subscription_id", sub.ID())
			continue
		}
		count++
	}

	if count > 0 {
		uc.logger.Infow("expired subscriptions", "count", count)
	}
	return count, nil
}
