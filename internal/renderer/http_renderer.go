package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new port.HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetAsset fetches asset details either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted
// ETag string.
func (r *httpRenderer) RenderGetAsset(ctx context.Context, getter port.AssetGetter, id db.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetAssetDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagAssetDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetAsset(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetAssetDetails(ctx, id, raw)
	r.cache.SetEtagAssetDetails(ctx, id, etag)

	return raw, etag, nil
}
