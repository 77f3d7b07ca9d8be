package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := mappers.AssetToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AssetModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return mappers.AssetToDomain(&model)
}

func (r *AssetRepository) FindByWebsiteID(ctx context.Context, websiteID uint, offset, limit int) ([]*asset.Asset, error) {
	var assetModels []models.AssetModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ?", websiteID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&assetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(assetModels))
	for i := range assetModels {
		a, err := mappers.AssetToDomain(&assetModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map asset %d: %w", assetModels[i].ID, err)
		}
		assets = append(assets, a)
	}

	return assets, nil
}

func (r *AssetRepository) CountByWebsiteID(ctx context.Context, websiteID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("website_id = ?", websiteID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}

	return count, nil
}

func (r *AssetRepository) SumSizeByWebsiteID(ctx context.Context, websiteID uint) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("website_id = ?", websiteID).
		Select("COALESCE(SUM(size_mb), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum asset sizes: %w", err)
	}

	return total, nil
}
