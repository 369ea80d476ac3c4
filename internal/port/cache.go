package port

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
)

// Cache provides caching capabilities for asset detail retrieval.
type Cache interface {
	GetAssetDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagAssetDetails(ctx context.Context, id db.UUID) (string, error)
	SetAssetDetails(ctx context.Context, id db.UUID, data []byte)
	SetEtagAssetDetails(ctx context.Context, id db.UUID, etag string)
	DeleteAssetDetails(ctx context.Context, id db.UUID) error
	DeleteEtagAssetDetails(ctx context.Context, id db.UUID) error
}
