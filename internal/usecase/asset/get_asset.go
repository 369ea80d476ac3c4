package asset

import (
	"context"
	"database/sql"
	"errors"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type assetGetterSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetGetterSrv must satisfy port.AssetGetter
var _ port.AssetGetter = (*assetGetterSrv)(nil)

// NewAssetGetter constructs a port.AssetGetter implementation.
func NewAssetGetter(repo port.AssetRepository) port.AssetGetter {
	return &assetGetterSrv{repo: repo}
}

func (s *assetGetterSrv) GetAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return a, nil
}
