package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event *analytics.Event) error {
	model, err := mappers.AnalyticsEventToModel(event)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create analytics event: %w", err)
	}

	return event.SetID(model.ID)
}

func (r *AnalyticsRepository) List(ctx context.Context, filter analytics.ListFilter, offset, limit int) ([]*analytics.Event, error) {
	var eventModels []models.AnalyticsEventModel

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Order("analytics_events.created_at DESC, analytics_events.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list analytics events: %w", err)
	}

	events := make([]*analytics.Event, 0, len(eventModels))
	for i := range eventModels {
		event, err := mappers.AnalyticsEventToDomain(&eventModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map analytics event %d: %w", eventModels[i].ID, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *AnalyticsRepository) Count(ctx context.Context, filter analytics.ListFilter) (int64, error) {
	var count int64

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count analytics events: %w", err)
	}

	return count, nil
}

func (r *AnalyticsRepository) CountByType(ctx context.Context, filter analytics.ListFilter) ([]analytics.TypeCount, error) {
	var rows []analytics.TypeCount

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Select("analytics_events.event_type AS event_type, COUNT(*) AS count").
		Group("analytics_events.event_type").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count events by type: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepository) CountByDay(ctx context.Context, filter analytics.ListFilter) ([]analytics.DayCount, error) {
	var rows []analytics.DayCount

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Select("DATE(analytics_events.created_at) AS day, analytics_events.event_type AS event_type, COUNT(*) AS count").
		Group("day, analytics_events.event_type").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count events by day: %w", err)
	}

	return rows, nil
}

// applyFilter scopes the query. Account scoping goes through website
// ownership, excluding soft-deleted websites.
func (r *AnalyticsRepository) applyFilter(tx *gorm.DB, filter analytics.ListFilter) *gorm.DB {
	query := tx.Model(&models.AnalyticsEventModel{})

	if filter.AccountID != 0 {
		query = query.
			Joins("JOIN websites ON websites.id = analytics_events.website_id AND websites.deleted_at IS NULL").
			Where("websites.account_id = ?", filter.AccountID)
	}
	if filter.WebsiteID != 0 {
		query = query.Where("analytics_events.website_id = ?", filter.WebsiteID)
	}
	if filter.EventType != "" {
		query = query.Where("analytics_events.event_type = ?", filter.EventType)
	}
	if !filter.Since.IsZero() {
		query = query.Where("analytics_events.created_at >= ?", filter.Since)
	}

	return query
}
