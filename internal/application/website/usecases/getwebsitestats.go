package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/website/dto"
	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// GetWebsiteStatsUseCase aggregates per-website counters for the dashboard.
type GetWebsiteStatsUseCase struct {
	websiteRepo website.Repository
	contactRepo contact.Repository
	projectRepo project.Repository
	assetRepo   asset.Repository
	logger      logger.Interface
}

func NewGetWebsiteStatsUseCase(
	websiteRepo website.Repository,
	contactRepo contact.Repository,
	projectRepo project.Repository,
	assetRepo asset.Repository,
	logger logger.Interface,
) *GetWebsiteStatsUseCase {
	return &GetWebsiteStatsUseCase{
		websiteRepo: websiteRepo,
		contactRepo: contactRepo,
		projectRepo: projectRepo,
		assetRepo:   assetRepo,
		logger:      logger,
	}
}

func (uc *GetWebsiteStatsUseCase) Execute(ctx context.Context, accountID, websiteID uint) (*dto.WebsiteStatsDTO, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, website.ErrWebsiteNotFound
	}

	contacts, err := uc.contactRepo.CountByWebsiteID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to count contacts", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	projects, err := uc.projectRepo.CountByWebsiteID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to count projects", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	assets, err := uc.assetRepo.CountByWebsiteID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to count assets", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}
	storage, err := uc.assetRepo.SumSizeByWebsiteID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to sum asset sizes", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to sum asset sizes: %w", err)
	}

	return &dto.WebsiteStatsDTO{
		WebsiteID:     websiteID,
		TotalContacts: contacts,
		TotalProjects: projects,
		TotalAssets:   assets,
		StorageUsedMB: storage,
	}, nil
}
