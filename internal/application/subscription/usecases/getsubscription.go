package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/subscription/dto"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, accountID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		// Every account owns a subscription from creation; missing means
		// corrupted data, not a flow to recover from.
		uc.logger.Errorw("subscription missing for account", "account_id", accountID)
		return nil, subscription.ErrSubscriptionNotFound
	}

	return dto.ToSubscriptionDTO(sub), nil
}
