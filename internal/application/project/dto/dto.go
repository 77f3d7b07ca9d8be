package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/project"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	WebsiteID   uint      `json:"website_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	DemoURL     string    `json:"demo_url,omitempty"`
	GithubURL   string    `json:"github_url,omitempty"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicProjectDTO is the visitor-facing projection: markdown already
// rendered to sanitized HTML, no internal fields.
type PublicProjectDTO struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ContentHTML string `json:"content_html"`
	DemoURL     string `json:"demo_url,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	Featured    bool   `json:"featured"`
}

func ToProjectDTO(p *project.Project) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		ID:          p.ID(),
		WebsiteID:   p.WebsiteID(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		Description: p.Description(),
		Content:     p.Content(),
		DemoURL:     p.DemoURL(),
		GithubURL:   p.GithubURL(),
		Status:      p.Status().String(),
		Featured:    p.IsFeatured(),
		Order:       p.Order(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToProjectDTOList(projects []*project.Project) []*ProjectDTO {
	out := make([]*ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectDTO(p))
	}
	return out
}
