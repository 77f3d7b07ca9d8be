package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/contact/dto"
	"github.com/hostmail-io/hostmail/internal/domain/account"
	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type SubmitContactCommand struct {
	WebsiteID uint
	FormData  map[string]any
	IPAddress string
	UserAgent string
}

// SubmitContactUseCase is the metered public submission path. Admission and
// usage recording happen in one conditional increment so two concurrent
// submissions cannot both take the last quota slot. Denial changes nothing.
type SubmitContactUseCase struct {
	contactRepo      contact.Repository
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	accountRepo      account.Repository
	notifier         ContactNotifier
	events           EventPublisher
	analytics        EventRecorder
	logger           logger.Interface
}

func NewSubmitContactUseCase(
	contactRepo contact.Repository,
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	accountRepo account.Repository,
	notifier ContactNotifier,
	events EventPublisher,
	analytics EventRecorder,
	logger logger.Interface,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		contactRepo:      contactRepo,
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		notifier:         notifier,
		events:           events,
		analytics:        analytics,
		logger:           logger,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, cmd SubmitContactCommand) (*dto.ContactMessageDTO, error) {
	site, err := uc.websiteRepo.FindByID(ctx, cmd.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil {
		return nil, website.ErrWebsiteNotFound
	}
	if !site.IsActive() {
		return nil, website.ErrWebsiteInactive
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, site.AccountID())
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		uc.logger.Errorw("subscription missing for account", "account_id", site.AccountID())
		return nil, subscription.ErrSubscriptionNotFound
	}

	email, name, subject, body := extractWellKnownFields(cmd.FormData)

	msg, err := contact.NewMessage(cmd.WebsiteID, cmd.FormData, email, name, subject, body, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		return nil, err
	}

	// Admission and recording in one statement. The quota check and the
	// increment must not be separable under concurrency.
	admitted, err := uc.subscriptionRepo.IncrementContactUsage(ctx, sub.ID())
	if err != nil {
		uc.logger.Errorw("failed to record contact usage", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to record contact usage: %w", err)
	}
	if !admitted {
		limits := sub.Limits()
		uc.logger.Infow("contact submission denied by quota",
			"website_id", cmd.WebsiteID,
			"subscription_id", sub.ID(),
			"plan", sub.Plan(),
			"quota", limits.MonthlyContactQuota,
		)
		return nil, subscription.NewQuotaError("contacts", int64(sub.ContactsUsedThisMonth()), int64(limits.MonthlyContactQuota))
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		uc.releaseSlot(ctx, sub.ID())
		uc.logger.Errorw("failed to store contact message", "error", err, "website_id", cmd.WebsiteID)
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := uc.websiteRepo.IncrementTotalContacts(ctx, site.ID()); err != nil {
		uc.logger.Warnw("failed to bump website contact counter", "error", err, "website_id", site.ID())
	}

	uc.notifyOwner(ctx, site, msg)
	uc.events.Publish(ctx, site.ID(), webhook.EventContactReceived, dto.ToContactMessageDTO(msg))
	uc.analytics.Record(ctx, site.ID(), analytics.EventContactReceived, map[string]any{"message_id": msg.ID()}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("contact message received",
		"message_id", msg.ID(),
		"website_id", site.ID(),
		"sender", msg.Email(),
	)

	return dto.ToContactMessageDTO(msg), nil
}

func (uc *SubmitContactUseCase) releaseSlot(ctx context.Context, subscriptionID uint) {
	if err := uc.subscriptionRepo.ReleaseContactUsage(ctx, subscriptionID); err != nil {
		uc.logger.Warnw("failed to release contact slot", "error", err, "subscription_id", subscriptionID)
	}
}

func (uc *SubmitContactUseCase) notifyOwner(ctx context.Context, site *website.Website, msg *contact.Message) {
	owner, err := uc.accountRepo.FindByID(ctx, site.AccountID())
	if err != nil || owner == nil {
		uc.logger.Warnw("failed to load owner for notification", "error", err, "account_id", site.AccountID())
		return
	}

	err = uc.notifier.NotifyContactReceived(ctx,
		owner.Email().String(), owner.Name(),
		site.Name(),
		msg.Email(), msg.Name(), msg.Subject(), msg.Body(),
	)
	if err != nil {
		uc.logger.Warnw("failed to send contact notification", "error", err, "message_id", msg.ID())
	}
}

// extractWellKnownFields pulls the conventional form fields out of the raw
// payload. Unknown fields stay in FormData.
func extractWellKnownFields(formData map[string]any) (email, name, subject, message string) {
	str := func(key string) string {
		if v, ok := formData[key].(string); ok {
			return v
		}
		return ""
	}
	return str("email"), str("name"), str("subject"), str("message")
}
