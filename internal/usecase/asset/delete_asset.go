package asset

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/port"
)

type assetDeleterSrv struct {
	repo     port.AssetRepository
	resolver port.BackendResolver
	cache    port.Cache
}

// compile-time check: *assetDeleterSrv must satisfy port.AssetDeleter
var _ port.AssetDeleter = (*assetDeleterSrv)(nil)

// NewAssetDeleter constructs a port.AssetDeleter implementation.
func NewAssetDeleter(repo port.AssetRepository, resolver port.BackendResolver, cache port.Cache) port.AssetDeleter {
	return &assetDeleterSrv{repo: repo, resolver: resolver, cache: cache}
}

// DeleteAsset removes the bytes then the metadata row. An absent row is
// a no-op success. A failed byte deletion is logged and never holds the
// metadata row hostage: the row is removed regardless.
func (s *assetDeleterSrv) DeleteAsset(ctx context.Context, id db.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	strg, err := s.resolver.Backend(ctx, a.BackendKind)
	if err != nil {
		log.Printf("could not resolve backend %q to delete bytes of asset #%s: %v", a.BackendKind, a.ID, err)
	} else if err := strg.Remove(ctx, a.LocationKey); err != nil {
		log.Printf("failed to remove bytes at %q for asset #%s: %v", a.LocationKey, a.ID, err)
	}

	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}

	if err := s.cache.DeleteAssetDetails(ctx, a.ID); err != nil {
		log.Printf("failed deleting cache for asset #%s: %v", a.ID, err)
	}
	if err := s.cache.DeleteEtagAssetDetails(ctx, a.ID); err != nil {
		log.Printf("failed deleting etag cache for asset #%s: %v", a.ID, err)
	}

	return nil
}
