package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// ProjectModel represents the database persistence model for portfolio
// projects.
type ProjectModel struct {
	ID          uint   `gorm:"primarykey"`
	WebsiteID   uint   `gorm:"not null;index:idx_project_website;uniqueIndex:idx_project_slug,priority:1"`
	Title       string `gorm:"not null;size:200"`
	Slug        string `gorm:"not null;size:200;uniqueIndex:idx_project_slug,priority:2"`
	Description string `gorm:"size:500"`
	Content     string `gorm:"type:text"`
	DemoURL     string `gorm:"size:500"`
	GithubURL   string `gorm:"size:500"`
	Status      string `gorm:"not null;size:20;default:draft;index:idx_project_status"`
	Featured    bool   `gorm:"not null;default:false"`
	SortOrder   int    `gorm:"not null;default:0"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// BeforeCreate hook for GORM
func (p *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
