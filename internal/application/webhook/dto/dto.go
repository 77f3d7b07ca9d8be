package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/webhook"
)

type WebhookDTO struct {
	ID           uint       `json:"id"`
	WebsiteID    uint       `json:"website_id"`
	URL          string     `json:"url"`
	Events       []string   `json:"events"`
	Secret       string     `json:"secret"`
	IsActive     bool       `json:"is_active"`
	TotalCalls   int        `json:"total_calls"`
	FailedCalls  int        `json:"failed_calls"`
	LastCalledAt *time.Time `json:"last_called_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DeliveryDTO struct {
	ID         uint      `json:"id"`
	WebhookID  uint      `json:"webhook_id"`
	Event      string    `json:"event"`
	StatusCode int       `json:"status_code"`
	Attempts   int       `json:"attempts"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToWebhookDTO(wh *webhook.Webhook) *WebhookDTO {
	if wh == nil {
		return nil
	}
	return &WebhookDTO{
		ID:           wh.ID(),
		WebsiteID:    wh.WebsiteID(),
		URL:          wh.TargetURL(),
		Events:       wh.Events(),
		Secret:       wh.Secret(),
		IsActive:     wh.IsActive(),
		TotalCalls:   wh.TotalCalls(),
		FailedCalls:  wh.FailedCalls(),
		LastCalledAt: wh.LastCalledAt(),
		CreatedAt:    wh.CreatedAt(),
	}
}

func ToWebhookDTOList(webhooks []*webhook.Webhook) []*WebhookDTO {
	out := make([]*WebhookDTO, 0, len(webhooks))
	for _, wh := range webhooks {
		out = append(out, ToWebhookDTO(wh))
	}
	return out
}

func ToDeliveryDTO(d *webhook.Delivery) *DeliveryDTO {
	if d == nil {
		return nil
	}
	return &DeliveryDTO{
		ID:         d.ID,
		WebhookID:  d.WebhookID,
		Event:      d.Event,
		StatusCode: d.StatusCode,
		Attempts:   d.Attempts,
		Success:    d.Success,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}
}
