package asset

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type audioReplacerSrv struct {
	repo    port.AssetRepository
	saver   port.AssetSaver
	deleter port.AssetDeleter
}

// compile-time check: *audioReplacerSrv must satisfy port.AudioReplacer
var _ port.AudioReplacer = (*audioReplacerSrv)(nil)

// NewAudioReplacer constructs a port.AudioReplacer implementation.
func NewAudioReplacer(repo port.AssetRepository, saver port.AssetSaver, deleter port.AssetDeleter) port.AudioReplacer {
	return &audioReplacerSrv{repo: repo, saver: saver, deleter: deleter}
}

// ReplaceAudio stores the new upload as a brand-new asset, carrying the
// old asset's episode/podcast links when the input omits them, then
// deletes the old asset. It is never an in-place mutation.
func (s *audioReplacerSrv) ReplaceAudio(ctx context.Context, id db.UUID, in port.SaveAssetInput) (*model.MediaAsset, error) {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	in.Kind = model.AssetKindEpisodeAudio
	if in.OwnerID == (db.UUID{}) {
		in.OwnerID = old.OwnerID
	}
	if in.PodcastID == nil {
		in.PodcastID = old.PodcastID
	}
	if in.EpisodeID == nil {
		in.EpisodeID = old.EpisodeID
	}

	created, err := s.saver.SaveAsset(ctx, in)
	if err != nil {
		return nil, err
	}

	// The new asset is committed; a failure to remove the old one only
	// leaves stale data behind, it does not undo the replacement.
	if err := s.deleter.DeleteAsset(ctx, old.ID); err != nil {
		log.Printf("failed deleting replaced asset #%s: %v", old.ID, err)
	}

	return created, nil
}
