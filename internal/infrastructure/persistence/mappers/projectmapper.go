package mappers

import (
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func ProjectToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
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
		SortOrder:   p.Order(),
		Version:     p.Version(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ProjectToDomain(model *models.ProjectModel) (*project.Project, error) {
	status := project.ProjectStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", model.Status)
	}

	return project.ReconstructProject(
		model.ID, model.WebsiteID,
		model.Title, model.Slug, model.Description, model.Content,
		model.DemoURL, model.GithubURL,
		status, model.Featured, model.SortOrder,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}
