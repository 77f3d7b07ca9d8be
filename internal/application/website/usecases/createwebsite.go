package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/website/dto"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type CreateWebsiteCommand struct {
	AccountID   uint
	Name        string
	Domain      string
	Description string
}

// CreateWebsiteUseCase creates a website after the plan's website ceiling
// admits one more.
type CreateWebsiteUseCase struct {
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCreateWebsiteUseCase(
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *CreateWebsiteUseCase {
	return &CreateWebsiteUseCase{
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CreateWebsiteUseCase) Execute(ctx context.Context, cmd CreateWebsiteCommand) (*dto.WebsiteDTO, error) {
	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	count, err := uc.websiteRepo.CountByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to count websites", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to count websites: %w", err)
	}

	if !sub.CanAddWebsite(count) {
		uc.logger.Infow("website creation denied by plan limit",
			"account_id", cmd.AccountID,
			"plan", sub.Plan(),
			"current", count,
			"limit", sub.Limits().WebsiteLimit,
		)
		return nil, subscription.NewQuotaError("websites", int64(count), int64(sub.Limits().WebsiteLimit))
	}

	taken, err := uc.websiteRepo.ExistsByDomain(ctx, cmd.AccountID, cmd.Domain)
	if err != nil {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}
	if taken {
		return nil, website.ErrDomainAlreadyTaken
	}

	site, err := website.NewWebsite(cmd.AccountID, cmd.Name, cmd.Domain, cmd.Description)
	if err != nil {
		return nil, err
	}

	if err := uc.websiteRepo.Create(ctx, site); err != nil {
		uc.logger.Errorw("failed to create website", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to create website: %w", err)
	}

	uc.logger.Infow("website created", "website_id", site.ID(), "account_id", cmd.AccountID, "domain", site.Domain())

	return dto.ToWebsiteDTO(site), nil
}
