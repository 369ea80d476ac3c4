package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
)

// ReplaceAudioHandler swaps an episode's audio file for a new upload.
// The old asset is deleted once the replacement is committed.
func ReplaceAudioHandler(svc port.AudioReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		kind := model.AssetKindEpisodeAudio
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

		in := port.SaveAssetInput{
			Kind:      kind,
			FileName:  header.Filename,
			MimeType:  mimeType,
			SizeBytes: header.Size,
			Reader:    file,
		}
		if ownerID, ok := OwnerIDFromContext(r.Context()); ok {
			in.OwnerID = ownerID
		}

		a, err := svc.ReplaceAudio(r.Context(), id, in)
		if err != nil {
			if errors.Is(err, asset.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			if errors.Is(err, asset.ErrStorageUnavailable) {
				WriteError(w, http.StatusServiceUnavailable, "storage backend unavailable", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not replace audio file", err)
			return
		}

		RespondJSON(w, http.StatusOK, a)
		log.Printf("✅  Successfully replaced audio of asset #%s with #%s", id, a.ID)
	}
}
