package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/payment"
	vo "github.com/hostmail-io/hostmail/internal/domain/payment/valueobjects"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"gateway_order_id": model.GatewayOrderID,
			"approval_url":     model.ApprovalURL,
			"failure_reason":   model.FailureReason,
			"paid_at":          model.PaidAt,
			"refunded_at":      model.RefundedAt,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	// The order terms (plan, period, amount) are immutable after creation.

	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) FindByOrderNo(ctx context.Context, orderNo string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_no = ?", orderNo).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment by order number: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("gateway_order_id = ?", gatewayOrderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment by gateway order: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) FindByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return r.toDomainList(paymentModels)
}

func (r *PaymentRepository) CountByAccountID(ctx context.Context, accountID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}

func (r *PaymentRepository) FindExpiredPending(ctx context.Context, before time.Time) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND expires_at < ?", vo.PaymentStatusPending.String(), before).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find expired pending payments: %w", err)
	}

	return r.toDomainList(paymentModels)
}

func (r *PaymentRepository) toDomainList(paymentModels []models.PaymentModel) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		p, err := mappers.PaymentToDomain(&paymentModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map payment %d: %w", paymentModels[i].ID, err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
