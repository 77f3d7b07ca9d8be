package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/asset/dto"
	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// ManageAssetsUseCase covers listing and deletion. Deleting releases the
// file's share of the storage quota.
type ManageAssetsUseCase struct {
	assetRepo        asset.Repository
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	store            FileStore
	logger           logger.Interface
}

func NewManageAssetsUseCase(
	assetRepo asset.Repository,
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	store FileStore,
	logger logger.Interface,
) *ManageAssetsUseCase {
	return &ManageAssetsUseCase{
		assetRepo:        assetRepo,
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		store:            store,
		logger:           logger,
	}
}

func (uc *ManageAssetsUseCase) List(ctx context.Context, accountID, websiteID uint, pagination utils.Pagination) ([]*dto.AssetDTO, int64, error) {
	site, err := uc.websiteRepo.FindByID(ctx, websiteID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return nil, 0, website.ErrWebsiteNotFound
	}

	assets, err := uc.assetRepo.FindByWebsiteID(ctx, websiteID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}
	total, err := uc.assetRepo.CountByWebsiteID(ctx, websiteID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return dto.ToAssetDTOList(assets), total, nil
}

func (uc *ManageAssetsUseCase) Delete(ctx context.Context, accountID, assetID uint) error {
	a, err := uc.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}
	if a == nil {
		return asset.ErrAssetNotFound
	}

	site, err := uc.websiteRepo.FindByID(ctx, a.WebsiteID())
	if err != nil {
		return fmt.Errorf("failed to get website: %w", err)
	}
	if site == nil || site.AccountID() != accountID {
		return asset.ErrAssetNotFound
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrSubscriptionNotFound
	}

	if err := uc.assetRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete asset", "error", err, "asset_id", assetID)
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	if err := uc.store.Remove(ctx, a.StorageKey()); err != nil {
		uc.logger.Warnw("failed to remove stored file", "error", err, "key", a.StorageKey())
	}

	if err := uc.subscriptionRepo.ReleaseStorageUsage(ctx, sub.ID(), a.SizeMB()); err != nil {
		uc.logger.Warnw("failed to release storage usage", "error", err, "subscription_id", sub.ID())
	}

	uc.logger.Infow("asset deleted", "asset_id", assetID, "website_id", a.WebsiteID(), "size_mb", a.SizeMB())
	return nil
}
