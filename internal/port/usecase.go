package port

import (
	"context"
	"io"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
)

// SaveAssetInput carries one upload into the orchestrator. The caller
// has already authenticated the owner and validated type and size.
type SaveAssetInput struct {
	OwnerID   db.UUID
	Kind      model.AssetKind
	FileName  string
	MimeType  string
	SizeBytes int64
	Reader    io.Reader
	PodcastID *db.UUID
	EpisodeID *db.UUID
}

// AssetSaver stores an upload's bytes on the active backend and records
// its metadata row.
type AssetSaver interface {
	SaveAsset(ctx context.Context, in SaveAssetInput) (*model.MediaAsset, error)
}

// AssetGetter retrieves an asset's metadata row.
type AssetGetter interface {
	GetAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, error)
}

// AssetStreamer opens an asset's byte stream alongside its metadata.
type AssetStreamer interface {
	StreamAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, io.ReadCloser, error)
	StreamByLocationKey(ctx context.Context, key string) (*model.MediaAsset, io.ReadCloser, error)
}

// AssetDeleter removes an asset's bytes and metadata row.
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, id db.UUID) error
}

// AudioReplacer swaps an episode's audio for a new upload. The
// replacement is a brand-new asset with a new ID; the old asset is
// deleted, never mutated.
type AudioReplacer interface {
	ReplaceAudio(ctx context.Context, id db.UUID, in SaveAssetInput) (*model.MediaAsset, error)
}
