package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/project/dto"
	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type CreateProjectCommand struct {
	AccountID   uint
	WebsiteID   uint
	Title       string
	Slug        string
	Description string
	Content     string
}

// CreateProjectUseCase creates a project after the per-website project
// ceiling admits one more.
type CreateProjectUseCase struct {
	projectRepo      project.Repository
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	events           EventPublisher
	logger           logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	events EventPublisher,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:      projectRepo,
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		events:           events,
		logger:           logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	site, err := uc.websiteRepo.FindByID(ctx, cmd.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != cmd.AccountID {
		return nil, website.ErrWebsiteNotFound
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	count, err := uc.projectRepo.CountByWebsiteID(ctx, cmd.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if !sub.CanAddProject(count) {
		uc.logger.Infow("project creation denied by plan limit",
			"website_id", cmd.WebsiteID,
			"plan", sub.Plan(),
			"current", count,
			"limit", sub.Limits().ProjectLimit,
		)
		return nil, subscription.NewQuotaError("projects", int64(count), int64(sub.Limits().ProjectLimit))
	}

	p, err := project.NewProject(cmd.WebsiteID, cmd.Title, cmd.Slug, cmd.Description, cmd.Content)
	if err != nil {
		return nil, err
	}

	taken, err := uc.projectRepo.ExistsBySlug(ctx, cmd.WebsiteID, p.Slug())
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, project.ErrSlugAlreadyTaken
	}

	if err := uc.projectRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create project", "error", err, "website_id", cmd.WebsiteID)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "website_id", cmd.WebsiteID, "slug", p.Slug())
	uc.events.Publish(ctx, cmd.WebsiteID, webhook.EventProjectCreated, dto.ToProjectDTO(p))

	return dto.ToProjectDTO(p), nil
}
