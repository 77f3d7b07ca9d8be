package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/asset"
)

type AssetDTO struct {
	ID          uint      `json:"id"`
	WebsiteID   uint      `json:"website_id"`
	Filename    string    `json:"filename"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	SizeMB      float64   `json:"size_mb"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	return &AssetDTO{
		ID:          a.ID(),
		WebsiteID:   a.WebsiteID(),
		Filename:    a.Filename(),
		StorageKey:  a.StorageKey(),
		ContentType: a.ContentType(),
		SizeMB:      a.SizeMB(),
		CreatedAt:   a.CreatedAt(),
	}
}

func ToAssetDTOList(assets []*asset.Asset) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetDTO(a))
	}
	return out
}
