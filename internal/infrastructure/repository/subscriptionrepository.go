package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return sub.SetID(model.ID)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan":                  model.Plan,
			"billing_period":        model.BillingPeriod,
			"status":                model.Status,
			"website_limit":         model.WebsiteLimit,
			"monthly_contact_quota": model.MonthlyContactQuota,
			"project_limit":         model.ProjectLimit,
			"storage_quota_mb":      model.StorageQuotaMB,
			"analytics":             model.Analytics,
			"integrations":          model.Integrations,
			"custom_domain":         model.CustomDomain,
			"white_label":           model.WhiteLabel,
			"priority_support":      model.PrioritySupport,
			"expires_at":            model.ExpiresAt,
			"cancelled_at":          model.CancelledAt,
			"version":               model.Version,
			"updated_at":            model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	// The usage counters are deliberately absent from the update set; they
	// are only ever moved by the atomic counter statements below, so a
	// stale in-memory copy cannot roll back a concurrent admission.

	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.SubscriptionModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return mappers.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) FindByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription by account: %w", err)
	}

	return mappers.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) List(ctx context.Context, offset, limit int) ([]*subscription.Subscription, error) {
	var subModels []models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&subModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.toDomainList(subModels)
}

func (r *SubscriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}

// IncrementContactUsage admits one contact submission through a single
// conditional UPDATE. The quota comparison happens inside the statement so
// two concurrent submissions cannot both take the last slot. A negative
// quota means unlimited.
func (r *SubscriptionRepository) IncrementContactUsage(ctx context.Context, id uint) (bool, error) {
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", id, vo.StatusActive.String()).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Where("monthly_contact_quota < 0 OR contacts_used_this_month < monthly_contact_quota").
		UpdateColumns(map[string]interface{}{
			"contacts_used_this_month": gorm.Expr("contacts_used_this_month + 1"),
			"version":                  gorm.Expr("version + 1"),
			"updated_at":               now,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to increment contact usage: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ReleaseContactUsage returns an admitted contact slot when the message
// write failed after admission. The counter floors at zero and the release
// never fails on status.
func (r *SubscriptionRepository) ReleaseContactUsage(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"contacts_used_this_month": gorm.Expr("GREATEST(contacts_used_this_month - 1, 0)"),
			"version":                  gorm.Expr("version + 1"),
			"updated_at":               biztime.NowUTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to release contact usage: %w", result.Error)
	}

	return nil
}

// AddStorageUsage admits a file upload through a single conditional UPDATE.
// An exact fit against the quota is admitted.
func (r *SubscriptionRepository) AddStorageUsage(ctx context.Context, id uint, deltaMB float64) (bool, error) {
	if deltaMB < 0 {
		return false, fmt.Errorf("storage delta cannot be negative")
	}

	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", id, vo.StatusActive.String()).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Where("storage_quota_mb < 0 OR storage_used_mb + ? <= storage_quota_mb", deltaMB).
		UpdateColumns(map[string]interface{}{
			"storage_used_mb": gorm.Expr("storage_used_mb + ?", deltaMB),
			"version":         gorm.Expr("version + 1"),
			"updated_at":      now,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to add storage usage: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ReleaseStorageUsage returns quota when a stored file is deleted. The
// counter floors at zero and the release never fails on status, so cleanup
// works on suspended and expired subscriptions too.
func (r *SubscriptionRepository) ReleaseStorageUsage(ctx context.Context, id uint, deltaMB float64) error {
	if deltaMB < 0 {
		return fmt.Errorf("storage delta cannot be negative")
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"storage_used_mb": gorm.Expr("GREATEST(storage_used_mb - ?, 0)", deltaMB),
			"version":         gorm.Expr("version + 1"),
			"updated_at":      biztime.NowUTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to release storage usage: %w", result.Error)
	}

	return nil
}

// ResetMonthlyUsage zeroes every monthly contact counter in one statement.
// Storage counters are untouched.
func (r *SubscriptionRepository) ResetMonthlyUsage(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("contacts_used_this_month > 0").
		UpdateColumns(map[string]interface{}{
			"contacts_used_this_month": 0,
			"version":                  gorm.Expr("version + 1"),
			"updated_at":               biztime.NowUTC(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset monthly usage: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *SubscriptionRepository) FindExpired(ctx context.Context, before time.Time) ([]*subscription.Subscription, error) {
	var subModels []models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", vo.StatusActive.String(), before).
		Find(&subModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}

	return r.toDomainList(subModels)
}

func (r *SubscriptionRepository) toDomainList(subModels []models.SubscriptionModel) ([]*subscription.Subscription, error) {
	subs := make([]*subscription.Subscription, 0, len(subModels))
	for i := range subModels {
		sub, err := mappers.SubscriptionToDomain(&subModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription %d: %w", subModels[i].ID, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
