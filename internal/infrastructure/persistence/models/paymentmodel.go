package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// PaymentModel represents the database persistence model for payment orders.
type PaymentModel struct {
	ID             uint    `gorm:"primarykey"`
	OrderNo        string  `gorm:"uniqueIndex;not null;size:50;comment:internal order number: pay_xxx"`
	AccountID      uint    `gorm:"not null;index:idx_payment_account"`
	SubscriptionID uint    `gorm:"not null;index:idx_payment_subscription"`
	Plan           string  `gorm:"not null;size:20"`
	BillingPeriod  string  `gorm:"not null;size:20"`
	AmountCents    int64   `gorm:"not null"`
	Currency       string  `gorm:"not null;size:3"`
	Method         string  `gorm:"not null;size:20"`
	Status         string  `gorm:"not null;size:20;index:idx_payment_status"`
	GatewayOrderID *string `gorm:"size:100;index:idx_payment_gateway_order"`
	ApprovalURL    *string `gorm:"size:500"`
	FailureReason  *string `gorm:"size:500"`
	PaidAt         *time.Time
	RefundedAt     *time.Time
	ExpiresAt      time.Time `gorm:"not null;index:idx_payment_expires"`
	Version        int       `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}

// BeforeCreate hook for GORM
func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
