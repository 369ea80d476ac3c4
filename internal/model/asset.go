package model

import (
	"time"

	"github.com/casthive/media-store-go/internal/db"
)

// AssetKind identifies what a stored binary object is used for.
type AssetKind string

const (
	AssetKindCoverArt     AssetKind = "cover_art"
	AssetKindEpisodeAudio AssetKind = "episode_audio"
)

// Category returns the storage category an asset kind is routed to.
// Categories map to subdirectories on the local backend and to
// pre-provisioned folders on the cloud drive backend.
func (k AssetKind) Category() string {
	if k == AssetKindCoverArt {
		return "images"
	}
	return "audio"
}

// BackendKind identifies which storage backend holds an asset's bytes.
// It is recorded at creation time and never changed: an asset stays
// bound to the backend that stored it even after the active backend
// is switched.
type BackendKind string

const (
	BackendKindLocal      BackendKind = "local"
	BackendKindCloudDrive BackendKind = "cloud_drive"
)

// MediaAsset is the authoritative record of one stored binary object.
type MediaAsset struct {
	ID          db.UUID     `json:"id"`
	OwnerID     db.UUID     `json:"owner_id"`
	PodcastID   *db.UUID    `json:"podcast_id,omitempty"`
	EpisodeID   *db.UUID    `json:"episode_id,omitempty"`
	Kind        AssetKind   `json:"kind"`
	BackendKind BackendKind `json:"backend_kind"`
	// LocationKey is backend-specific (relative path or remote file ID)
	// and opaque outside the backend that produced it.
	LocationKey string     `json:"location_key"`
	PublicURL   *string    `json:"public_url,omitempty"`
	MimeType    string     `json:"mime_type"`
	SizeBytes   int64      `json:"size_bytes"`
	Checksum    *string    `json:"checksum,omitempty"`
	ImageMeta   *ImageMeta `json:"image_meta,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
