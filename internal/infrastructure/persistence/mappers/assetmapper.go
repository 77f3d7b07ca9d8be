package mappers

import (
	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func AssetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:          a.ID(),
		WebsiteID:   a.WebsiteID(),
		Filename:    a.Filename(),
		StorageKey:  a.StorageKey(),
		ContentType: a.ContentType(),
		SizeMB:      a.SizeMB(),
		CreatedAt:   a.CreatedAt(),
	}
}

func AssetToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID, model.WebsiteID,
		model.Filename, model.StorageKey, model.ContentType,
		model.SizeMB, model.CreatedAt,
	)
}
