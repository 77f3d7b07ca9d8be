package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/webhook/dto"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type CreateWebhookCommand struct {
	AccountID uint
	WebsiteID uint
	URL       string
	Events    []string
}

type UpdateWebhookCommand struct {
	AccountID uint
	WebhookID uint
	URL       string
	Events    []string
	Active    *bool
}

// ManageWebhooksUseCase covers webhook configuration. Creation is gated on
// the plan's integrations feature.
type ManageWebhooksUseCase struct {
	webhookRepo      webhook.Repository
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewManageWebhooksUseCase(
	webhookRepo webhook.Repository,
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ManageWebhooksUseCase {
	return &ManageWebhooksUseCase{
		webhookRepo:      webhookRepo,
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ManageWebhooksUseCase) ownedWebsite(ctx context.Context, accountID, websiteID uint) (*website.Website, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, website.ErrWebsiteNotFound
	}
	return site, nil
}

func (uc *ManageWebhooksUseCase) loadOwned(ctx context.Context, accountID, webhookID uint) (*webhook.Webhook, error) {
	wh, err := uc.webhookRepo.FindByID(ctx, webhookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	if wh == nil {
		return nil, webhook.ErrWebhookNotFound
	}
	if _, err := uc.ownedWebsite(ctx, accountID, wh.WebsiteID()); err != nil {
		return nil, webhook.ErrWebhookNotFound
	}
	return wh, nil
}

func (uc *ManageWebhooksUseCase) Create(ctx context.Context, cmd CreateWebhookCommand) (*dto.WebhookDTO, error) {
	if _, err := uc.ownedWebsite(ctx, cmd.AccountID, cmd.WebsiteID); err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}
	if !sub.HasIntegrations() {
		uc.logger.Infow("webhook creation denied, plan lacks integrations",
			"account_id", cmd.AccountID,
			"plan", sub.Plan(),
		)
		return nil, fmt.Errorf("%w: webhooks require a plan with integrations", subscription.ErrPolicyViolation)
	}

	wh, err := webhook.NewWebhook(cmd.WebsiteID, cmd.URL, cmd.Events)
	if err != nil {
		return nil, err
	}

	if err := uc.webhookRepo.Create(ctx, wh); err != nil {
		uc.logger.Errorw("failed to create webhook", "error", err, "website_id", cmd.WebsiteID)
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	uc.logger.Infow("webhook created", "webhook_id", wh.ID(), "website_id", cmd.WebsiteID, "url", wh.TargetURL())
	return dto.ToWebhookDTO(wh), nil
}

func (uc *ManageWebhooksUseCase) List(ctx context.Context, accountID, websiteID uint) ([]*dto.WebhookDTO, error) {
	if _, err := uc.ownedWebsite(ctx, accountID, websiteID); err != nil {
		return nil, err
	}

	webhooks, err := uc.webhookRepo.FindByWebsiteID(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return dto.ToWebhookDTOList(webhooks), nil
}

func (uc *ManageWebhooksUseCase) Update(ctx context.Context, cmd UpdateWebhookCommand) (*dto.WebhookDTO, error) {
	wh, err := uc.loadOwned(ctx, cmd.AccountID, cmd.WebhookID)
	if err != nil {
		return nil, err
	}

	if err := wh.Update(cmd.URL, cmd.Events); err != nil {
		return nil, err
	}
	if cmd.Active != nil {
		if *cmd.Active {
			wh.Activate()
		} else {
			wh.Deactivate()
		}
	}

	if err := uc.webhookRepo.Update(ctx, wh); err != nil {
		uc.logger.Errorw("failed to update webhook", "error", err, "webhook_id", wh.ID())
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}
	return dto.ToWebhookDTO(wh), nil
}

func (uc *ManageWebhooksUseCase) Delete(ctx context.Context, accountID, webhookID uint) error {
	wh, err := uc.loadOwned(ctx, accountID, webhookID)
	if err != nil {
		return err
	}

	if err := uc.webhookRepo.Delete(ctx, wh.ID()); err != nil {
		uc.logger.Errorw("failed to delete webhook", "error", err, "webhook_id", webhookID)
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	uc.logger.Infow("webhook deleted", "webhook_id", webhookID)
	return nil
}

func (uc *ManageWebhooksUseCase) RegenerateSecret(ctx context.Context, accountID, webhookID uint) (*dto.WebhookDTO, error) {
	wh, err := uc.loadOwned(ctx, accountID, webhookID)
	if err != nil {
		return nil, err
	}

	if _, err := wh.RegenerateSecret(); err != nil {
		return nil, err
	}
	if err := uc.webhookRepo.Update(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to persist regenerated secret: %w", err)
	}
	return dto.ToWebhookDTO(wh), nil
}

func (uc *ManageWebhooksUseCase) ListDeliveries(ctx context.Context, accountID, webhookID uint, pagination utils.Pagination) ([]*dto.DeliveryDTO, error) {
	wh, err := uc.loadOwned(ctx, accountID, webhookID)
	if err != nil {
		return nil, err
	}

	deliveries, err := uc.webhookRepo.FindDeliveries(ctx, wh.ID(), pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	out := make([]*dto.DeliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, dto.ToDeliveryDTO(d))
	}
	return out, nil
}
