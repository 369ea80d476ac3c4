package port

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
)

// HTTPRenderer mediates between HTTP handlers and the asset getter use
// case. It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetAsset returns the cached JSON result and its ETag if
	// available or executes the underlying use case and caches the
	// output otherwise.
	RenderGetAsset(ctx context.Context, getter AssetGetter, id db.UUID) ([]byte, string, error)
}
