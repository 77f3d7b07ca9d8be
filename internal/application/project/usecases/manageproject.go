package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/project/dto"
	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type UpdateProjectCommand struct {
	AccountID   uint
	WebsiteID   uint
	ProjectID   uint
	Title       string
	Description string
	Content     string
	DemoURL     string
	GithubURL   string
	Status      string
	Featured    *bool
	Order       *int
}

// ManageProjectUseCase covers the owner-side project operations.
type ManageProjectUseCase struct {
	projectRepo project.Repository
	websiteRepo website.Repository
	events      EventPublisher
	logger      logger.Interface
}

func NewManageProjectUseCase(
	projectRepo project.Repository,
	websiteRepo website.Repository,
	events EventPublisher,
	logger logger.Interface,
) *ManageProjectUseCase {
	return &ManageProjectUseCase{
		projectRepo: projectRepo,
		websiteRepo: websiteRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *ManageProjectUseCase) loadOwned(ctx context.Context, accountID, websiteID, projectID uint) (*project.Project, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, website.ErrWebsiteNotFound
	}

	p, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil || p.WebsiteID() != websiteID {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

func (uc *ManageProjectUseCase) List(ctx context.Context, accountID, websiteID uint, pagination utils.Pagination) ([]*dto.ProjectDTO, int, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, 0, website.ErrWebsiteNotFound
	}

	projects, err := uc.projectRepo.FindByWebsiteID(ctx, websiteID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	total, err := uc.projectRepo.CountByWebsiteID(ctx, websiteID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return dto.ToProjectDTOList(projects), total, nil
}

func (uc *ManageProjectUseCase) Get(ctx context.Context, accountID, websiteID, projectID uint) (*dto.ProjectDTO, error) {
	p, err := uc.loadOwned(ctx, accountID, websiteID, projectID)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectDTO(p), nil
}

func (uc *ManageProjectUseCase) Update(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	p, err := uc.loadOwned(ctx, cmd.AccountID, cmd.WebsiteID, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := p.Update(cmd.Title, cmd.Description, cmd.Content, cmd.DemoURL, cmd.GithubURL); err != nil {
		return nil, err
	}
	switch project.ProjectStatus(cmd.Status) {
	case project.StatusPublished:
		p.Publish()
	case project.StatusArchived:
		p.Archive()
	case project.StatusDraft:
		p.RevertToDraft()
	case "":
		// status unchanged
	default:
		return nil, fmt.Errorf("invalid project status: %s", cmd.Status)
	}
	if cmd.Featured != nil {
		p.SetFeatured(*cmd.Featured)
	}
	if cmd.Order != nil {
		p.SetOrder(*cmd.Order)
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", p.ID())
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.events.Publish(ctx, cmd.WebsiteID, webhook.EventProjectUpdated, dto.ToProjectDTO(p))
	return dto.ToProjectDTO(p), nil
}

func (uc *ManageProjectUseCase) Delete(ctx context.Context, accountID, websiteID, projectID uint) error {
	p, err := uc.loadOwned(ctx, accountID, websiteID, projectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", p.ID())
		return fmt.Errorf("failed to delete project: %w", err)
	}

	uc.logger.Infow("project deleted", "project_id", p.ID(), "website_id", websiteID)
	uc.events.Publish(ctx, websiteID, webhook.EventProjectDeleted, map[string]any{
		"id":   p.ID(),
		"slug": p.Slug(),
	})
	return nil
}
