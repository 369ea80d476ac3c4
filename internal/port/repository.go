package port

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
)

// AssetRepository defines persistence operations for media assets. The
// repository is the sole generator of asset IDs and creation
// timestamps: Create fills them in on the given record.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.MediaAsset) error
	GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error)
	GetByLocationKey(ctx context.Context, key string) (*model.MediaAsset, error)
	Delete(ctx context.Context, id db.UUID) error
}

// StorageConfigRepository persists admin storage configurations.
type StorageConfigRepository interface {
	Create(ctx context.Context, cfg *model.StorageConfig) error
	GetByID(ctx context.Context, id db.UUID) (*model.StorageConfig, error)
	List(ctx context.Context) ([]model.StorageConfig, error)
	// Activate marks the given config active and deactivates the rest.
	Activate(ctx context.Context, id db.UUID) error
	// GetActive returns the active config, or sql.ErrNoRows when no
	// config has been activated yet.
	GetActive(ctx context.Context) (*model.StorageConfig, error)
}
