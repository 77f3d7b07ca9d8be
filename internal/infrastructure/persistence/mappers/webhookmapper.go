package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func WebhookToModel(wh *webhook.Webhook) (*models.WebhookModel, error) {
	events, err := json.Marshal(wh.Events())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal events: %w", err)
	}

	return &models.WebhookModel{
		ID:           wh.ID(),
		WebsiteID:    wh.WebsiteID(),
		TargetURL:    wh.TargetURL(),
		Events:       events,
		Secret:       wh.Secret(),
		Active:       wh.IsActive(),
		TotalCalls:   wh.TotalCalls(),
		FailedCalls:  wh.FailedCalls(),
		LastCalledAt: wh.LastCalledAt(),
		Version:      wh.Version(),
		CreatedAt:    wh.CreatedAt(),
		UpdatedAt:    wh.UpdatedAt(),
	}, nil
}

func WebhookToDomain(model *models.WebhookModel) (*webhook.Webhook, error) {
	var events []string
	if len(model.Events) > 0 {
		if err := json.Unmarshal(model.Events, &events); err != nil {
			return nil, fmt.Errorf("failed to unmarshal events: %w", err)
		}
	}

	return webhook.ReconstructWebhook(
		model.ID, model.WebsiteID,
		model.TargetURL, events, model.Secret,
		model.Active, model.TotalCalls, model.FailedCalls, model.LastCalledAt,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}

func DeliveryToModel(d *webhook.Delivery) *models.WebhookDeliveryModel {
	return &models.WebhookDeliveryModel{
		ID:         d.ID,
		WebhookID:  d.WebhookID,
		Event:      d.Event,
		Payload:    d.Payload,
		StatusCode: d.StatusCode,
		Attempts:   d.Attempts,
		Success:    d.Success,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}
}

func DeliveryToDomain(model *models.WebhookDeliveryModel) *webhook.Delivery {
	return &webhook.Delivery{
		ID:         model.ID,
		WebhookID:  model.WebhookID,
		Event:      model.Event,
		Payload:    model.Payload,
		StatusCode: model.StatusCode,
		Attempts:   model.Attempts,
		Success:    model.Success,
		Error:      model.Error,
		CreatedAt:  model.CreatedAt,
	}
}
