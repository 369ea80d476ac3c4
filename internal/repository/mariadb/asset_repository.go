package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type AssetRepository struct {
	db *sql.DB
}

// compile-time check: *AssetRepository must satisfy port.AssetRepository
var _ port.AssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts the asset row. The repository is the sole generator of
// the ID and creation timestamp; both are filled in on the given record.
func (r *AssetRepository) Create(ctx context.Context, a *model.MediaAsset) error {
	a.ID = db.NewUUID()
	a.CreatedAt = time.Now().UTC().Truncate(time.Second)

	log.Printf("creating database record for asset #%s (%s, %s)...", a.ID, a.Kind, a.BackendKind)

	const query = `
      INSERT INTO media_assets
        (id, owner_id, podcast_id, episode_id, kind, backend_kind, location_key, public_url, mime_type, size_bytes, checksum, image_meta, created_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.OwnerID, a.PodcastID, a.EpisodeID,
		a.Kind, a.BackendKind, a.LocationKey, a.PublicURL,
		a.MimeType, a.SizeBytes, a.Checksum, a.ImageMeta,
		a.CreatedAt,
	)
	return err
}

func (r *AssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	log.Printf("fetching asset #%s from the database...", id)

	const query = `
      SELECT id, owner_id, podcast_id, episode_id, kind, backend_kind, location_key, public_url, mime_type, size_bytes, checksum, image_meta, created_at
      FROM media_assets
      WHERE id = ?
    `
	return scanAsset(r.db.QueryRowContext(ctx, query, id))
}

func (r *AssetRepository) GetByLocationKey(ctx context.Context, key string) (*model.MediaAsset, error) {
	log.Printf("fetching asset by location key %q from the database...", key)

	const query = `
      SELECT id, owner_id, podcast_id, episode_id, kind, backend_kind, location_key, public_url, mime_type, size_bytes, checksum, image_meta, created_at
      FROM media_assets
      WHERE location_key = ?
    `
	return scanAsset(r.db.QueryRowContext(ctx, query, key))
}

func (r *AssetRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for asset #%s...", id)

	const query = `DELETE FROM media_assets WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func scanAsset(row *sql.Row) (*model.MediaAsset, error) {
	var (
		a         model.MediaAsset
		podcastID []byte
		episodeID []byte
		imageMeta []byte
	)
	if err := row.Scan(
		&a.ID, &a.OwnerID, &podcastID, &episodeID,
		&a.Kind, &a.BackendKind, &a.LocationKey, &a.PublicURL,
		&a.MimeType, &a.SizeBytes, &a.Checksum, &imageMeta,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}

	if podcastID != nil {
		var u db.UUID
		if err := u.Scan(podcastID); err != nil {
			return nil, err
		}
		a.PodcastID = &u
	}
	if episodeID != nil {
		var u db.UUID
		if err := u.Scan(episodeID); err != nil {
			return nil, err
		}
		a.EpisodeID = &u
	}
	if imageMeta != nil {
		var m model.ImageMeta
		if err := m.Scan(imageMeta); err != nil {
			return nil, err
		}
		a.ImageMeta = &m
	}
	return &a, nil
}
