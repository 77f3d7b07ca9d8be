package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// AccountModel represents the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:254"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"not null;size:100"`
	Status       string `gorm:"not null;size:20;default:active;index:idx_account_status"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}

// BeforeCreate hook for GORM
func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}
