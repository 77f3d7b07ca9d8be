package models

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// WebhookDeliveryModel represents the database persistence model for the
// webhook delivery audit log. Rows are append-only; one row per settled
// dispatch, after retries.
type WebhookDeliveryModel struct {
	ID         uint   `gorm:"primarykey"`
	WebhookID  uint   `gorm:"not null;index:idx_delivery_webhook"`
	Event      string `gorm:"not null;size:50"`
	Payload    string `gorm:"type:text"`
	StatusCode int    `gorm:"not null;default:0"`
	Attempts   int    `gorm:"not null;default:1"`
	Success    bool   `gorm:"not null;default:false"`
	Error      string `gorm:"size:500"`
	CreatedAt  time.Time `gorm:"index:idx_delivery_created"`
}

// TableName specifies the table name for GORM
func (WebhookDeliveryModel) TableName() string {
	return constants.TableWebhookDeliveries
}
