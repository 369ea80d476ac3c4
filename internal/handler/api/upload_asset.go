package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
	"github.com/google/uuid"
)

// multipartOverhead leaves room for the non-file parts of the request
// body when capping its size.
const multipartOverhead = 1 << 20

// UploadAssetHandler accepts a multipart upload of the given kind and
// hands it to the saver. The file part must be named "file".
func UploadAssetHandler(kind model.AssetKind, svc port.AssetSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxSize := asset.MaxSizeFor(kind)
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a \"file\" part is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("⚠️  Failed to close uploaded file: %v", err)
			}
		}()

		if header.Size <= 0 {
			WriteError(w, http.StatusBadRequest, "uploaded file is empty", nil)
			return
		}
		if header.Size > maxSize {
			WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds the %d byte limit", maxSize), nil)
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if !asset.IsMimeTypeAllowed(kind, mimeType) {
			WriteError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("mime type %q is not allowed for %s", mimeType, kind), nil)
			return
		}

		ownerID, ok := OwnerIDFromContext(r.Context())
		if !ok {
			// Unauthenticated deployments pass the owner explicitly.
			parsed, err := parseUUIDForm(r, "owner_id")
			if err != nil {
				WriteError(w, http.StatusBadRequest, "owner_id is required", err)
				return
			}
			if parsed == nil {
				WriteError(w, http.StatusBadRequest, "owner_id is required", nil)
				return
			}
			ownerID = *parsed
		}

		podcastID, err := parseUUIDForm(r, "podcast_id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "podcast_id is not a valid UUID", err)
			return
		}
		episodeID, err := parseUUIDForm(r, "episode_id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "episode_id is not a valid UUID", err)
			return
		}

		in := port.SaveAssetInput{
			OwnerID:   ownerID,
			Kind:      kind,
			FileName:  header.Filename,
			MimeType:  mimeType,
			SizeBytes: header.Size,
			Reader:    file,
			PodcastID: podcastID,
			EpisodeID: episodeID,
		}
		a, err := svc.SaveAsset(r.Context(), in)
		if err != nil {
			if errors.Is(err, asset.ErrStorageUnavailable) {
				WriteError(w, http.StatusServiceUnavailable, "storage backend unavailable", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not store file", err)
			return
		}

		RespondJSON(w, http.StatusCreated, a)
		log.Printf("✅  Successfully stored %s #%s (%d bytes)", kind, a.ID, a.SizeBytes)
	}
}

func parseUUIDForm(r *http.Request, field string) (*db.UUID, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID %q: %w", raw, err)
	}
	id := db.UUID(parsed)
	return &id, nil
}
