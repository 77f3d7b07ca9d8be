package usecases

import (
	"context"
	"fmt"
	"path"

	"github.com/hostmail-io/hostmail/internal/application/asset/dto"
	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/id"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// FileStore persists file bytes. The infrastructure implementation writes to
// local disk; the interface keeps the use case storage-agnostic.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
}

type UploadAssetCommand struct {
	AccountID   uint
	WebsiteID   uint
	Filename    string
	ContentType string
	Data        []byte
}

// UploadAssetUseCase stores a file after the storage quota admits it. The
// quota counter is adjusted through the same conditional contract as contact
// admission: the check and the addition are one statement.
type UploadAssetUseCase struct {
	assetRepo        asset.Repository
	websiteRepo      website.Repository
	subscriptionRepo subscription.Repository
	store            FileStore
	logger           logger.Interface
}

func NewUploadAssetUseCase(
	assetRepo asset.Repository,
	websiteRepo website.Repository,
	subscriptionRepo subscription.Repository,
	store FileStore,
	logger logger.Interface,
) *UploadAssetUseCase {
	return &UploadAssetUseCase{
		assetRepo:        assetRepo,
		websiteRepo:      websiteRepo,
		subscriptionRepo: subscriptionRepo,
		store:            store,
		logger:           logger,
	}
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, cmd UploadAssetCommand) (*dto.AssetDTO, error) {
	if len(cmd.Data) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	sizeMB := float64(len(cmd.Data)) / (1024 * 1024)

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

	admitted, err := uc.subscriptionRepo.AddStorageUsage(ctx, sub.ID(), sizeMB)
	if err != nil {
		uc.logger.Errorw("failed to record storage usage", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to record storage usage: %w", err)
	}
	if !admitted {
		limits := sub.Limits()
		uc.logger.Infow("upload denied by storage quota",
			"website_id", cmd.WebsiteID,
			"subscription_id", sub.ID(),
			"size_mb", sizeMB,
			"quota_mb", limits.StorageQuotaMB,
		)
		return nil, subscription.NewQuotaError("storage_mb", int64(sub.StorageUsedMB()), int64(limits.StorageQuotaMB))
	}

	suffix, err := id.Generate(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate storage key: %w", err)
	}
	key := fmt.Sprintf("websites/%d/%s_%s", cmd.WebsiteID, suffix, path.Base(cmd.Filename))

	a, err := asset.NewAsset(cmd.WebsiteID, cmd.Filename, key, cmd.ContentType, sizeMB)
	if err != nil {
		uc.releaseSlot(ctx, sub.ID(), sizeMB)
		return nil, err
	}

	if err := uc.store.Save(ctx, key, cmd.Data); err != nil {
		uc.releaseSlot(ctx, sub.ID(), sizeMB)
		uc.logger.Errorw("failed to store file", "error", err, "key", key)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	if err := uc.assetRepo.Create(ctx, a); err != nil {
		uc.releaseSlot(ctx, sub.ID(), sizeMB)
		if rmErr := uc.store.Remove(ctx, key); rmErr != nil {
			uc.logger.Warnw("failed to remove orphaned file", "error", rmErr, "key", key)
		}
		uc.logger.Errorw("failed to create asset", "error", err, "website_id", cmd.WebsiteID)
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	uc.logger.Infow("asset uploaded", "asset_id", a.ID(), "website_id", cmd.WebsiteID, "size_mb", sizeMB)
	return dto.ToAssetDTO(a), nil
}

func (uc *UploadAssetUseCase) releaseSlot(ctx context.Context, subscriptionID uint, sizeMB float64) {
	if err := uc.subscriptionRepo.ReleaseStorageUsage(ctx, subscriptionID, sizeMB); err != nil {
		uc.logger.Warnw("failed to release storage slot", "error", err, "subscription_id", subscriptionID)
	}
}
