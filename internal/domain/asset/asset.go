package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

const maxFilenameLength = 255

// Asset is stored-file metadata counted against the subscription's storage
// quota. The quota counter is adjusted by the upload and delete use cases,
// never by the aggregate itself.
type Asset struct {
	id          uint
	websiteID   uint
	filename    string
	storageKey  string
	contentType string
	sizeMB      float64
	createdAt   time.Time
}

// NewAsset records metadata for a file about to be stored. storageKey is the
// backend-assigned location.
func NewAsset(websiteID uint, filename, storageKey, contentType string, sizeMB float64) (*Asset, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if len(filename) > maxFilenameLength {
		return nil, fmt.Errorf("filename is too long")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	if sizeMB <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}

	return &Asset{
		websiteID:   websiteID,
		filename:    filename,
		storageKey:  storageKey,
		contentType: contentType,
		sizeMB:      sizeMB,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructAsset reconstructs an asset from persistence.
func ReconstructAsset(assetID, websiteID uint, filename, storageKey, contentType string, sizeMB float64, createdAt time.Time) (*Asset, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}

	return &Asset{
		id:          assetID,
		websiteID:   websiteID,
		filename:    filename,
		storageKey:  storageKey,
		contentType: contentType,
		sizeMB:      sizeMB,
		createdAt:   createdAt,
	}, nil
}

func (a *Asset) ID() uint             { return a.id }
func (a *Asset) WebsiteID() uint      { return a.websiteID }
func (a *Asset) Filename() string     { return a.filename }
func (a *Asset) StorageKey() string   { return a.storageKey }
func (a *Asset) ContentType() string  { return a.contentType }
func (a *Asset) SizeMB() float64      { return a.sizeMB }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }

// SetID sets the asset ID (only for persistence layer use)
func (a *Asset) SetID(assetID uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if assetID == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = assetID
	return nil
}
