package asset

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	_ "golang.org/x/image/webp"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type assetSaverSrv struct {
	repo     port.AssetRepository
	resolver port.BackendResolver
}

// compile-time check: *assetSaverSrv must satisfy port.AssetSaver
var _ port.AssetSaver = (*assetSaverSrv)(nil)

// NewAssetSaver constructs the save orchestrator.
func NewAssetSaver(repo port.AssetRepository, resolver port.BackendResolver) port.AssetSaver {
	return &assetSaverSrv{repo: repo, resolver: resolver}
}

// SaveAsset writes the upload's bytes to the active backend, then
// records the metadata row. The two steps are not atomic: if the row
// cannot be created, the just-stored bytes are deleted best-effort and
// the metadata error is returned unchanged.
func (s *assetSaverSrv) SaveAsset(ctx context.Context, in port.SaveAssetInput) (*model.MediaAsset, error) {
	strg, err := s.resolver.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve storage backend: %w", err)
	}

	hasher := sha256.New()
	reader := io.Reader(io.TeeReader(in.Reader, hasher))

	// Cover art is small enough to buffer, which lets us capture the
	// image dimensions before the bytes leave for the backend.
	var imageMeta *model.ImageMeta
	if in.Kind == model.AssetKindCoverArt && IsImage(in.MimeType) {
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			imageMeta = &model.ImageMeta{Width: cfg.Width, Height: cfg.Height}
		} else {
			log.Printf("could not decode image dimensions for %q: %v", in.FileName, err)
		}
		reader = bytes.NewReader(data)
	}

	obj, err := strg.Store(ctx, in.Kind.Category(), in.FileName, reader, in.SizeBytes, in.MimeType)
	if err != nil {
		// nothing durable to clean up: no row ever references the upload
		return nil, err
	}

	checksum := hex.EncodeToString(hasher.Sum(nil))
	a := &model.MediaAsset{
		OwnerID:     in.OwnerID,
		PodcastID:   in.PodcastID,
		EpisodeID:   in.EpisodeID,
		Kind:        in.Kind,
		BackendKind: strg.Kind(),
		LocationKey: obj.LocationKey,
		PublicURL:   obj.PublicURL,
		MimeType:    in.MimeType,
		SizeBytes:   in.SizeBytes,
		Checksum:    &checksum,
		ImageMeta:   imageMeta,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		// compensating action: the stored bytes are orphaned now
		if rmErr := strg.Remove(ctx, obj.LocationKey); rmErr != nil {
			log.Printf("compensating delete failed for location %q: %v", obj.LocationKey, rmErr)
		}
		return nil, err
	}

	return a, nil
}
