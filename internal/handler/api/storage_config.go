package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/validation"
)

type CreateStorageConfigRequest struct {
	Name        string `json:"name"         validate:"required,max=255"`
	BackendKind string `json:"backend_kind" validate:"required,oneof=local cloud_drive"`

	LocalRoot *string `json:"local_root,omitempty"             validate:"required_if=BackendKind local"`

	DriveCredentialsJSON *string `json:"drive_credentials_json,omitempty" validate:"required_if=BackendKind cloud_drive"`
	DriveImagesFolderID  *string `json:"drive_images_folder_id,omitempty" validate:"required_if=BackendKind cloud_drive"`
	DriveAudioFolderID   *string `json:"drive_audio_folder_id,omitempty"  validate:"required_if=BackendKind cloud_drive"`
}

// ListStorageConfigsHandler returns every storage config, credentials
// redacted.
func ListStorageConfigsHandler(repo port.StorageConfigRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfgs, err := repo.List(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list storage configs", err)
			return
		}

		out := make([]model.StorageConfig, len(cfgs))
		for i := range cfgs {
			out[i] = redactConfig(cfgs[i])
		}
		RespondJSON(w, http.StatusOK, out)
	}
}

// CreateStorageConfigHandler records a new storage config. The new
// config is inactive until explicitly activated.
func CreateStorageConfigHandler(repo port.StorageConfigRepository, resolver port.BackendResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStorageConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		cfg := &model.StorageConfig{
			Name:                 req.Name,
			BackendKind:          model.BackendKind(req.BackendKind),
			LocalRoot:            req.LocalRoot,
			DriveCredentialsJSON: req.DriveCredentialsJSON,
			DriveImagesFolderID:  req.DriveImagesFolderID,
			DriveAudioFolderID:   req.DriveAudioFolderID,
		}
		if err := repo.Create(r.Context(), cfg); err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create storage config", err)
			return
		}

		resolver.Invalidate()

		RespondJSON(w, http.StatusCreated, redactConfig(*cfg))
		log.Printf("✅  Successfully created storage config #%s (%s)", cfg.ID, cfg.BackendKind)
	}
}

// ActivateStorageConfigHandler marks a config as the active one and
// forces the resolver to pick it up immediately.
func ActivateStorageConfigHandler(repo port.StorageConfigRepository, resolver port.BackendResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := repo.Activate(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteError(w, http.StatusNotFound, "Storage config not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not activate storage config", err)
			return
		}

		resolver.Invalidate()

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully activated storage config #%s", id)
	}
}

// redactConfig strips the service account credentials from a config
// before it goes out over the wire.
func redactConfig(cfg model.StorageConfig) model.StorageConfig {
	if cfg.DriveCredentialsJSON != nil {
		redacted := "[REDACTED]"
		cfg.DriveCredentialsJSON = &redacted
	}
	return cfg
}
