package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/website"
)

type WebsiteDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Domain         string    `json:"domain"`
	Description    string    `json:"description"`
	APIKey         string    `json:"api_key"`
	AllowedOrigins []string  `json:"allowed_origins"`
	IsActive       bool      `json:"is_active"`
	TotalContacts  int       `json:"total_contacts"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WebsiteStatsDTO struct {
	WebsiteID     uint    `json:"website_id"`
	TotalContacts int64   `json:"total_contacts"`
	TotalProjects int     `json:"total_projects"`
	TotalAssets   int64   `json:"total_assets"`
	StorageUsedMB float64 `json:"storage_used_mb"`
}

func ToWebsiteDTO(site *website.Website) *WebsiteDTO {
	if site == nil {
		return nil
	}
	origins := site.AllowedOrigins()
	if origins == nil {
		origins = []string{}
	}
	return &WebsiteDTO{
		ID:             site.ID(),
		Name:           site.Name(),
		Domain:         site.Domain(),
		Description:    site.Description(),
		APIKey:         site.APIKey(),
		AllowedOrigins: origins,
		IsActive:       site.IsActive(),
		TotalContacts:  site.TotalContacts(),
		CreatedAt:      site.CreatedAt(),
		UpdatedAt:      site.UpdatedAt(),
	}
}

func ToWebsiteDTOList(sites []*website.Website) []*WebsiteDTO {
	out := make([]*WebsiteDTO, 0, len(sites))
	for _, site := range sites {
		out = append(out, ToWebsiteDTO(site))
	}
	return out
}
