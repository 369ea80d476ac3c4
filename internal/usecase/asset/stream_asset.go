package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type assetStreamerSrv struct {
	repo     port.AssetRepository
	resolver port.BackendResolver
}

// compile-time check: *assetStreamerSrv must satisfy port.AssetStreamer
var _ port.AssetStreamer = (*assetStreamerSrv)(nil)

// NewAssetStreamer constructs a port.AssetStreamer implementation.
func NewAssetStreamer(repo port.AssetRepository, resolver port.BackendResolver) port.AssetStreamer {
	return &assetStreamerSrv{repo: repo, resolver: resolver}
}

// StreamAsset opens the byte stream for an asset. The stream comes from
// the backend kind recorded on the row, not necessarily the active one:
// an asset stays bound to the backend that stored it.
func (s *assetStreamerSrv) StreamAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, io.ReadCloser, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrAssetNotFound
		}
		return nil, nil, err
	}
	return s.open(ctx, a)
}

// StreamByLocationKey resolves a public streaming path back to its
// asset and opens the byte stream.
func (s *assetStreamerSrv) StreamByLocationKey(ctx context.Context, key string) (*model.MediaAsset, io.ReadCloser, error) {
	a, err := s.repo.GetByLocationKey(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrAssetNotFound
		}
		return nil, nil, err
	}
	return s.open(ctx, a)
}

func (s *assetStreamerSrv) open(ctx context.Context, a *model.MediaAsset) (*model.MediaAsset, io.ReadCloser, error) {
	strg, err := s.resolver.Backend(ctx, a.BackendKind)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve backend %q: %w", a.BackendKind, err)
	}
	rc, err := strg.Open(ctx, a.LocationKey)
	if err != nil {
		return nil, nil, err
	}
	return a, rc, nil
}
