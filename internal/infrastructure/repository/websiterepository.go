package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type WebsiteRepository struct {
	db *gorm.DB
}

func NewWebsiteRepository(db *gorm.DB) *WebsiteRepository {
	return &WebsiteRepository{db: db}
}

func (r *WebsiteRepository) Create(ctx context.Context, site *website.Website) error {
	model, err := mappers.WebsiteToModel(site)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create website: %w", err)
	}

	return site.SetID(model.ID)
}

func (r *WebsiteRepository) Update(ctx context.Context, site *website.Website) error {
	model, err := mappers.WebsiteToModel(site)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebsiteModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"domain":          model.Domain,
			"description":     model.Description,
			"api_key":         model.APIKey,
			"allowed_origins": model.AllowedOrigins,
			"active":          model.Active,
			"version":         model.Version,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update website: %w", result.Error)
	}

	// total_contacts moves only through IncrementTotalContacts.

	return nil
}

func (r *WebsiteRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.WebsiteModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete website: %w", err)
	}
	return nil
}

func (r *WebsiteRepository) FindByID(ctx context.Context, id uint) (*website.Website, error) {
	var model models.WebsiteModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find website: %w", err)
	}

	return mappers.WebsiteToDomain(&model)
}

func (r *WebsiteRepository) FindByAPIKey(ctx context.Context, apiKey string) (*website.Website, error) {
	var model models.WebsiteModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("api_key = ?", apiKey).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find website by API key: %w", err)
	}

	return mappers.WebsiteToDomain(&model)
}

func (r *WebsiteRepository) FindByAccountID(ctx context.Context, accountID uint) ([]*website.Website, error) {
	var siteModels []models.WebsiteModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&siteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list websites: %w", err)
	}

	sites := make([]*website.Website, 0, len(siteModels))
	for i := range siteModels {
		site, err := mappers.WebsiteToDomain(&siteModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map website %d: %w", siteModels[i].ID, err)
		}
		sites = append(sites, site)
	}

	return sites, nil
}

func (r *WebsiteRepository) CountByAccountID(ctx context.Context, accountID uint) (int, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebsiteModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count websites: %w", err)
	}

	return int(count), nil
}

func (r *WebsiteRepository) ExistsByDomain(ctx context.Context, accountID uint, domain string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebsiteModel{}).
		Where("account_id = ? AND domain = ?", accountID, domain).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check domain existence: %w", err)
	}

	return count > 0, nil
}

func (r *WebsiteRepository) IncrementTotalContacts(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebsiteModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"total_contacts": gorm.Expr("total_contacts + 1"),
			"updated_at":     biztime.NowUTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment total contacts: %w", result.Error)
	}

	return nil
}
