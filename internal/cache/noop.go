package cache

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetAssetDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagAssetDetails(ctx context.Context, id db.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetAssetDetails(ctx context.Context, id db.UUID, data []byte) {}

func (n *NoopCache) SetEtagAssetDetails(ctx context.Context, id db.UUID, etag string) {}

func (n *NoopCache) DeleteAssetDetails(ctx context.Context, id db.UUID) error { return nil }

func (n *NoopCache) DeleteEtagAssetDetails(ctx context.Context, id db.UUID) error { return nil }
