package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hostmail-io/hostmail/internal/shared/constants"
)

// AnalyticsEventModel represents the database persistence model for analytics
// events. Rows are append-only; there is no update or soft-delete path.
type AnalyticsEventModel struct {
	ID        uint   `gorm:"primarykey"`
	WebsiteID uint   `gorm:"not null;index:idx_analytics_website_type_created,priority:1"`
	EventType string `gorm:"not null;size:50;index:idx_analytics_website_type_created,priority:2"`
	Metadata  datatypes.JSON
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:500"`
	Referer   string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"index:idx_analytics_website_type_created,priority:3;index:idx_analytics_created"`
}

// TableName specifies the table name for GORM
func (AnalyticsEventModel) TableName() string {
	return constants.TableAnalyticsEvents
}
