package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// ResetMonthlyUsageUseCase zeroes every subscription's monthly contact
// counter at a billing-month boundary. Storage counters are untouched.
// The scheduler guards against running twice in the same month.
type ResetMonthlyUsageUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewResetMonthlyUsageUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ResetMonthlyUsageUseCase {
	return &ResetMonthlyUsageUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ResetMonthlyUsageUseCase) Execute(ctx context.Context) (int64, error) {
	count, err := uc.subscriptionRepo.ResetMonthlyUsage(ctx)
	if err != nil {
		uc.logger.Errorw("failed to reset monthly usage", "error", err)
		return 0, fmt.Errorf("failed to reset monthly usage: %w", err)
	}

	uc.logger.Infow("monthly usage counters reset", "subscriptions", count)
	return count, nil
}
