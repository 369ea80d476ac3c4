package model

import (
	"time"

	"github.com/casthive/media-store-go/internal/db"
)

// StorageConfig is the admin-mutable record describing which backend is
// in use and its credentials/paths. At most one config is active.
type StorageConfig struct {
	ID          db.UUID     `json:"id"`
	Name        string      `json:"name"`
	BackendKind BackendKind `json:"backend_kind"`

	// local backend
	LocalRoot *string `json:"local_root,omitempty"`

	// cloud drive backend
	DriveCredentialsJSON *string `json:"drive_credentials_json,omitempty"`
	DriveImagesFolderID  *string `json:"drive_images_folder_id,omitempty"`
	DriveAudioFolderID   *string `json:"drive_audio_folder_id,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
