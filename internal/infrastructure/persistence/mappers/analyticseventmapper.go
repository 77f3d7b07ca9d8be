package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func AnalyticsEventToModel(event *analytics.Event) (*models.AnalyticsEventModel, error) {
	model := &models.AnalyticsEventModel{
		ID:        event.ID(),
		WebsiteID: event.WebsiteID(),
		EventType: event.EventType(),
		IPAddress: event.IPAddress(),
		UserAgent: event.UserAgent(),
		Referer:   event.Referer(),
		CreatedAt: event.CreatedAt(),
	}

	if meta := event.Metadata(); len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		model.Metadata = raw
	}

	return model, nil
}

func AnalyticsEventToDomain(model *models.AnalyticsEventModel) (*analytics.Event, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
		}
	}

	return analytics.ReconstructEvent(
		model.ID, model.WebsiteID,
		model.EventType,
		metadata,
		model.IPAddress, model.UserAgent, model.Referer,
		model.CreatedAt,
	)
}
