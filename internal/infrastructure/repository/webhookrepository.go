package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type WebhookRepository struct {
	db *gorm.DB
}

func NewWebhookRepository(db *gorm.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

func (r *WebhookRepository) Create(ctx context.Context, wh *webhook.Webhook) error {
	model, err := mappers.WebhookToModel(wh)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create webhook: %w", err)
	}

	return wh.SetID(model.ID)
}

func (r *WebhookRepository) Update(ctx context.Context, wh *webhook.Webhook) error {
	model, err := mappers.WebhookToModel(wh)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebhookModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"target_url": model.TargetURL,
			"events":     model.Events,
			"secret":     model.Secret,
			"active":     model.Active,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update webhook: %w", result.Error)
	}

	// Call counters move only through RecordDelivery.

	return nil
}

func (r *WebhookRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.WebhookModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

func (r *WebhookRepository) FindByID(ctx context.Context, id uint) (*webhook.Webhook, error) {
	var model models.WebhookModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find webhook: %w", err)
	}

	return mappers.WebhookToDomain(&model)
}

func (r *WebhookRepository) FindByWebsiteID(ctx context.Context, websiteID uint) ([]*webhook.Webhook, error) {
	var whModels []models.WebhookModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ?", websiteID).
		Order("id ASC").
		Find(&whModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}

	return r.toDomainList(whModels)
}

func (r *WebhookRepository) FindActiveByEvent(ctx context.Context, websiteID uint, event string) ([]*webhook.Webhook, error) {
	var whModels []models.WebhookModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ? AND active = ?", websiteID, true).
		Where("JSON_CONTAINS(events, JSON_QUOTE(?))", event).
		Find(&whModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find webhooks for event: %w", err)
	}

	return r.toDomainList(whModels)
}

// RecordDelivery appends the audit row and bumps the webhook's call counters
// in one transaction so the log and the counters cannot drift.
func (r *WebhookRepository) RecordDelivery(ctx context.Context, d *webhook.Delivery) error {
	model := mappers.DeliveryToModel(d)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create delivery record: %w", err)
		}

		updates := map[string]interface{}{
			"total_calls":    gorm.Expr("total_calls + 1"),
			"last_called_at": biztime.NowUTC(),
			"updated_at":     biztime.NowUTC(),
		}
		if !d.Success {
			updates["failed_calls"] = gorm.Expr("failed_calls + 1")
		}

		if err := tx.Model(&models.WebhookModel{}).
			Where("id = ?", d.WebhookID).
			UpdateColumns(updates).Error; err != nil {
			return fmt.Errorf("failed to update webhook counters: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	d.ID = model.ID
	return nil
}

func (r *WebhookRepository) FindDeliveries(ctx context.Context, webhookID uint, offset, limit int) ([]*webhook.Delivery, error) {
	var deliveryModels []models.WebhookDeliveryModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("webhook_id = ?", webhookID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&deliveryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	deliveries := make([]*webhook.Delivery, 0, len(deliveryModels))
	for i := range deliveryModels {
		deliveries = append(deliveries, mappers.DeliveryToDomain(&deliveryModels[i]))
	}

	return deliveries, nil
}

func (r *WebhookRepository) toDomainList(whModels []models.WebhookModel) ([]*webhook.Webhook, error) {
	webhooks := make([]*webhook.Webhook, 0, len(whModels))
	for i := range whModels {
		wh, err := mappers.WebhookToDomain(&whModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map webhook %d: %w", whModels[i].ID, err)
		}
		webhooks = append(webhooks, wh)
	}
	return webhooks, nil
}
