package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/analytics"
)

type EventDTO struct {
	ID        uint           `json:"id"`
	WebsiteID uint           `json:"website_id"`
	EventType string         `json:"event_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Referer   string         `json:"referer,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToEventDTO(event *analytics.Event) *EventDTO {
	return &EventDTO{
		ID:        event.ID(),
		WebsiteID: event.WebsiteID(),
		EventType: event.EventType(),
		Metadata:  event.Metadata(),
		IPAddress: event.IPAddress(),
		UserAgent: event.UserAgent(),
		Referer:   event.Referer(),
		CreatedAt: event.CreatedAt(),
	}
}

func ToEventDTOList(events []*analytics.Event) []*EventDTO {
	out := make([]*EventDTO, 0, len(events))
	for _, event := range events {
		out = append(out, ToEventDTO(event))
	}
	return out
}

// DailyStatDTO is one day of activity, pivoted out of the per-type counts.
type DailyStatDTO struct {
	Date         string `json:"date"`
	Contacts     int64  `json:"contacts"`
	ProjectViews int64  `json:"project_views"`
	APICalls     int64  `json:"api_calls"`
	Total        int64  `json:"total"`
}

type TopEventDTO struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

type StatsDTO struct {
	TotalContacts     int64          `json:"total_contacts"`
	TotalProjectViews int64          `json:"total_project_views"`
	TotalAPICalls     int64          `json:"total_api_calls"`
	TotalEvents       int64          `json:"total_events"`
	PeriodStats       []DailyStatDTO `json:"period_stats"`
	TopEvents         []TopEventDTO  `json:"top_events"`
}
