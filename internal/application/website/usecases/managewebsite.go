package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/website/dto"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type UpdateWebsiteCommand struct {
	AccountID      uint
	WebsiteID      uint
	Name           string
	Domain         string
	Description    string
	AllowedOrigins []string
	Active         *bool
}

// ManageWebsiteUseCase covers the owner-side website operations: list, get,
// update, delete, regenerate API key.
type ManageWebsiteUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewManageWebsiteUseCase(websiteRepo website.Repository, logger logger.Interface) *ManageWebsiteUseCase {
	return &ManageWebsiteUseCase{
		websiteRepo: websiteRepo,
		logger:      logger,
	}
}

// loadOwned fetches a website and verifies ownership. A foreign website is
// reported as not found rather than forbidden.
func (uc *ManageWebsiteUseCase) loadOwned(ctx context.Context, accountID, websiteID uint) (*website.Website, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		uc.logger.Errorw("failed to get website", "error", err, "website_id", websiteID)
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, website.ErrWebsiteNotFound
	}
	return site, nil
}

func (uc *ManageWebsiteUseCase) List(ctx context.Context, accountID uint) ([]*dto.WebsiteDTO, error) {
	sites, err := uc.websiteRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list websites", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to list websites: %w", err)
	}
	return dto.ToWebsiteDTOList(sites), nil
}

func (uc *ManageWebsiteUseCase) Get(ctx context.Context, accountID, websiteID uint) (*dto.WebsiteDTO, error) {
	site, err := uc.loadOwned(ctx, accountID, websiteID)
	if err != nil {
		return nil, err
	}
	return dto.ToWebsiteDTO(site), nil
}

func (uc *ManageWebsiteUseCase) Update(ctx context.Context, cmd UpdateWebsiteCommand) (*dto.WebsiteDTO, error) {
	site, err := uc.loadOwned(ctx, cmd.AccountID, cmd.WebsiteID)
	if err != nil {
		return nil, err
	}

	if err := site.UpdateDetails(cmd.Name, cmd.Domain, cmd.Description); err != nil {
		return nil, err
	}
	if cmd.AllowedOrigins != nil {
		site.SetAllowedOrigins(cmd.AllowedOrigins)
	}
	if cmd.Active != nil {
		if *cmd.Active {
			site.Activate()
		} else {
			site.Deactivate()
		}
	}

	if err := uc.websiteRepo.Update(ctx, site); err != nil {
		uc.logger.Errorw("failed to update website", "error", err, "website_id", site.ID())
		return nil, fmt.Errorf("failed to update website: %w", err)
	}

	return dto.ToWebsiteDTO(site), nil
}

func (uc *ManageWebsiteUseCase) Delete(ctx context.Context, accountID, websiteID uint) error {
	site, err := uc.loadOwned(ctx, accountID, websiteID)
	if err != nil {
		return err
	}

	if err := uc.websiteRepo.Delete(ctx, site.ID()); err != nil {
		uc.logger.Errorw("failed to delete website", "error", err, "website_id", site.ID())
		return fmt.Errorf("failed to delete website: %w", err)
	}

	uc.logger.Infow("website deleted", "website_id", site.ID(), "account_id", accountID)
	return nil
}

func (uc *ManageWebsiteUseCase) RegenerateAPIKey(ctx context.Context, accountID, websiteID uint) (*dto.WebsiteDTO, error) {
	site, err := uc.loadOwned(ctx, accountID, websiteID)
	if err != nil {
		return nil, err
	}

	if _, err := site.RegenerateAPIKey(); err != nil {
		return nil, err
	}

	if err := uc.websiteRepo.Update(ctx, site); err != nil {
		uc.logger.Errorw("failed to persist regenerated key", "error", err, "website_id", site.ID())
		return nil, fmt.Errorf("failed to persist regenerated key: %w", err)
	}

	uc.logger.Infow("API key regenerated", "website_id", site.ID(), "account_id", accountID)
	return dto.ToWebsiteDTO(site), nil
}
