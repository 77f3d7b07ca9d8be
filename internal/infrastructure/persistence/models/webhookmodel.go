package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// WebhookModel represents the database persistence model for webhook
// endpoints.
type WebhookModel struct {
	ID           uint   `gorm:"primarykey"`
	WebsiteID    uint   `gorm:"not null;index:idx_webhook_website"`
	TargetURL    string `gorm:"not null;size:500"`
	Events       datatypes.JSON
	Secret       string `gorm:"not null;size:64;comment:HMAC signing secret: wh_xxx"`
	Active       bool   `gorm:"not null;default:true"`
	TotalCalls   int    `gorm:"not null;default:0"`
	FailedCalls  int    `gorm:"not null;default:0"`
	LastCalledAt *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (WebhookModel) TableName() string {
	return constants.TableWebhooks
}

// BeforeCreate hook for GORM
func (w *WebhookModel) BeforeCreate(tx *gorm.DB) error {
	if w.Version == 0 {
		w.Version = 1
	}
	return nil
}
