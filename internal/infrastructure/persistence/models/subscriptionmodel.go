package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. The limit snapshot is flattened into columns so the
// guarded usage increments can compare counter against quota inside a
// single UPDATE statement.
type SubscriptionModel struct {
	ID            uint   `gorm:"primarykey"`
	AccountID     uint   `gorm:"uniqueIndex;not null"`
	Plan          string `gorm:"not null;size:20;index:idx_subscription_plan"`
	BillingPeriod string `gorm:"not null;size:20;default:monthly"`
	Status        string `gorm:"not null;size:20;index:idx_subscription_status"`

	WebsiteLimit        int `gorm:"not null;default:0"`
	MonthlyContactQuota int `gorm:"not null;default:0"`
	ProjectLimit        int `gorm:"not null;default:0"`
	StorageQuotaMB      int `gorm:"not null;default:0"`

	Analytics       bool `gorm:"not null;default:false"`
	Integrations    bool `gorm:"not null;default:false"`
	CustomDomain    bool `gorm:"not null;default:false"`
	WhiteLabel      bool `gorm:"not null;default:false"`
	PrioritySupport bool `gorm:"not null;default:false"`

	ContactsUsedThisMonth int     `gorm:"not null;default:0"`
	StorageUsedMB         float64 `gorm:"not null;default:0"`

	StartedAt   time.Time `gorm:"not null"`
	ExpiresAt   *time.Time `gorm:"index:idx_subscription_expires"`
	CancelledAt *time.Time

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
