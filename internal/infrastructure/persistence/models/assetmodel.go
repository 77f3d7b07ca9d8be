package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// AssetModel represents the database persistence model for uploaded files.
// Only the metadata lives here; the bytes live in the file store under
// StorageKey.
type AssetModel struct {
	ID          uint    `gorm:"primarykey"`
	WebsiteID   uint    `gorm:"not null;index:idx_asset_website"`
	Filename    string  `gorm:"not null;size:255"`
	StorageKey  string  `gorm:"uniqueIndex;not null;size:500"`
	ContentType string  `gorm:"size:100"`
	SizeMB      float64 `gorm:"not null"`
	CreatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AssetModel) TableName() string {
	return constants.TableAssets
}
