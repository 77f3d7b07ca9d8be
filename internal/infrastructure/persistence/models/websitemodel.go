package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// WebsiteModel represents the database persistence model for websites.
type WebsiteModel struct {
	ID             uint   `gorm:"primarykey"`
	AccountID      uint   `gorm:"not null;index:idx_website_account"`
	Name           string `gorm:"not null;size:100"`
	Domain         string `gorm:"not null;size:253;index:idx_website_domain"`
	Description    string `gorm:"size:500"`
	APIKey         string `gorm:"uniqueIndex;not null;size:64;comment:public form credential: hm_xxx"`
	AllowedOrigins datatypes.JSON
	Active         bool `gorm:"not null;default:true"`
	TotalContacts  int  `gorm:"not null;default:0"`
	Version        int  `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (WebsiteModel) TableName() string {
	return constants.TableWebsites
}

// BeforeCreate hook for GORM
func (w *WebsiteModel) BeforeCreate(tx *gorm.DB) error {
	if w.Version == 0 {
		w.Version = 1
	}
	return nil
}
