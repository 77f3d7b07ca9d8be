package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// ContactMessageModel represents the database persistence model for contact
// form submissions. FormData keeps the raw submitted fields; the well-known
// fields are extracted into columns for listing and search.
type ContactMessageModel struct {
	ID        uint `gorm:"primarykey"`
	WebsiteID uint `gorm:"not null;index:idx_contact_website"`
	FormData  datatypes.JSON
	Email     string `gorm:"not null;size:254;index:idx_contact_email"`
	Name      string `gorm:"size:100"`
	Subject   string `gorm:"size:300"`
	Body      string `gorm:"type:text"`
	Status    string `gorm:"not null;size:20;default:new;index:idx_contact_status"`
	IPAddress string `gorm:"size:45"`
	UserAgent string `gorm:"size:500"`
	Notes     string `gorm:"type:text"`
	ReadAt    *time.Time
	RepliedAt *time.Time
	CreatedAt time.Time `gorm:"index:idx_contact_created"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return constants.TableContactMessages
}
