package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/project/dto"
	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// ListPublicProjectsUseCase serves the visitor-facing project listing for a
// website already resolved by API key. Only published projects are returned,
// with markdown rendered to sanitized HTML.
type ListPublicProjectsUseCase struct {
	projectRepo project.Repository
	renderer    MarkdownRenderer
	logger      logger.Interface
}

func NewListPublicProjectsUseCase(
	projectRepo project.Repository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *ListPublicProjectsUseCase {
	return &ListPublicProjectsUseCase{
		projectRepo: projectRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListPublicProjectsUseCase) Execute(ctx context.Context, websiteID uint) ([]*dto.PublicProjectDTO, error) {
	projects, err := uc.projectRepo.FindPublishedByWebsiteID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to list published projects", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to list published projects: %w", err)
	}

	out := make([]*dto.PublicProjectDTO, 0, len(projects))
	for _, p := range projects {
		html, err := uc.renderer.Render(p.Content())
		if err != nil {
			uc.logger.Warnw("failed to render project content", "error", err, "project_id", p.ID())
			html = ""
		}
		out = append(out, &dto.PublicProjectDTO{
			Title:       p.Title(),
			Slug:        p.Slug(),
			Description: p.Description(),
			ContentHTML: html,
			DemoURL:     p.DemoURL(),
			GithubURL:   p.GithubURL(),
			Featured:    p.IsFeatured(),
		})
	}
	return out, nil
}
