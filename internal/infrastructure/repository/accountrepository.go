package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/account"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	model := mappers.AccountToModel(acc)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return acc.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) error {
	model := mappers.AccountToModel(acc)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"name":          model.Name,
			"password_hash": model.PasswordHash,
			"status":        model.Status,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AccountModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return mappers.AccountToDomain(&model)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model models.AccountModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}

	return mappers.AccountToDomain(&model)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}
