package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/contact/dto"
	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type ListContactsQuery struct {
	AccountID uint
	WebsiteID uint
	Status    string
	Search    string
}

// ManageContactsUseCase covers the owner-side inbox operations.
type ManageContactsUseCase struct {
	contactRepo contact.Repository
	websiteRepo website.Repository
	events      EventPublisher
	analytics   EventRecorder
	logger      logger.Interface
}

func NewManageContactsUseCase(
	contactRepo contact.Repository,
	websiteRepo website.Repository,
	events EventPublisher,
	analytics EventRecorder,
	logger logger.Interface,
) *ManageContactsUseCase {
	return &ManageContactsUseCase{
		contactRepo: contactRepo,
		websiteRepo: websiteRepo,
		events:      events,
		analytics:   analytics,
		logger:      logger,
	}
}

func (uc *ManageContactsUseCase) List(ctx context.Context, query ListContactsQuery, pagination utils.Pagination) ([]*dto.ContactMessageDTO, int64, error) {
	site, err := uc.websiteRepo.FindByID(ctx, query.WebsiteID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != query.AccountID {
		return nil, 0, website.ErrWebsiteNotFound
	}

	filter := contact.ListFilter{
		WebsiteID: query.WebsiteID,
		Status:    contact.MessageStatus(query.Status),
		Search:    query.Search,
	}
	msgs, err := uc.contactRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	total, err := uc.contactRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return dto.ToContactMessageDTOList(msgs), total, nil
}

func (uc *ManageContactsUseCase) loadOwned(ctx context.Context, accountID, messageID uint) (*contact.Message, error) {
	msg, err := uc.contactRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	if msg == nil {
		return nil, contact.ErrMessageNotFound
	}

	site, err := uc.websiteRepo.FindByID(ctx, msg.WebsiteID())
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, contact.ErrMessageNotFound
	}
	return msg, nil
}

func (uc *ManageContactsUseCase) Get(ctx context.Context, accountID, messageID uint) (*dto.ContactMessageDTO, error) {
	msg, err := uc.loadOwned(ctx, accountID, messageID)
	if err != nil {
		return nil, err
	}
	return dto.ToContactMessageDTO(msg), nil
}

// UpdateStatus moves a message through the inbox workflow. A reply publishes
// the contact.replied event.
func (uc *ManageContactsUseCase) UpdateStatus(ctx context.Context, accountID, messageID uint, status string) (*dto.ContactMessageDTO, error) {
	msg, err := uc.loadOwned(ctx, accountID, messageID)
	if err != nil {
		return nil, err
	}

	switch contact.MessageStatus(status) {
	case contact.StatusRead:
		msg.MarkAsRead()
	case contact.StatusReplied:
		msg.MarkAsReplied()
	case contact.StatusArchived:
		msg.Archive()
	case contact.StatusSpam:
		msg.MarkAsSpam()
	default:
		return nil, fmt.Errorf("invalid message status: %s", status)
	}

	if err := uc.contactRepo.Update(ctx, msg); err != nil {
		uc.logger.Errorw("failed to update contact message", "error", err, "message_id", messageID)
		return nil, fmt.Errorf("failed to update contact message: %w", err)
	}

	switch msg.Status() {
	case contact.StatusRead:
		uc.analytics.Record(ctx, msg.WebsiteID(), analytics.EventContactRead, map[string]any{"message_id": msg.ID()}, "", "")
	case contact.StatusReplied:
		uc.events.Publish(ctx, msg.WebsiteID(), webhook.EventContactReplied, dto.ToContactMessageDTO(msg))
		uc.analytics.Record(ctx, msg.WebsiteID(), analytics.EventContactReplied, map[string]any{"message_id": msg.ID()}, "", "")
	}

	return dto.ToContactMessageDTO(msg), nil
}

func (uc *ManageContactsUseCase) UpdateNotes(ctx context.Context, accountID, messageID uint, notes string) (*dto.ContactMessageDTO, error) {
	msg, err := uc.loadOwned(ctx, accountID, messageID)
	if err != nil {
		return nil, err
	}

	msg.UpdateNotes(notes)
	if err := uc.contactRepo.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update contact message: %w", err)
	}
	return dto.ToContactMessageDTO(msg), nil
}

func (uc *ManageContactsUseCase) Delete(ctx context.Context, accountID, messageID uint) error {
	msg, err := uc.loadOwned(ctx, accountID, messageID)
	if err != nil {
		return err
	}

	if err := uc.contactRepo.Delete(ctx, msg.ID()); err != nil {
		uc.logger.Errorw("failed to delete contact message", "error", err, "message_id", messageID)
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
