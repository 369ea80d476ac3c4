package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path"
	"strconv"

	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
	"github.com/go-chi/chi/v5"
)

// StreamMediaHandler serves an asset's bytes by location key. The
// response is streamed straight from the backend; nothing is buffered
// beyond the copy window.
func StreamMediaHandler(svc port.AssetStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		filename := chi.URLParam(r, "filename")
		if category == "" || filename == "" {
			WriteError(w, http.StatusBadRequest, "category and filename are required", nil)
			return
		}
		key := path.Join(category, filename)

		a, rc, err := svc.StreamByLocationKey(r.Context(), key)
		if err != nil {
			if errors.Is(err, asset.ErrAssetNotFound) || errors.Is(err, asset.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			if errors.Is(err, asset.ErrStorageUnavailable) {
				WriteError(w, http.StatusServiceUnavailable, "storage backend unavailable", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not open media", err)
			return
		}
		defer func() {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close media stream %q: %v", key, err)
			}
		}()

		w.Header().Set("Content-Type", a.MimeType)
		w.Header().Set("Content-Length", strconv.FormatInt(a.SizeBytes, 10))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, rc); err != nil {
			// Headers are already out; all we can do is cut the
			// connection short and log it.
			log.Printf("❌  Streaming %q aborted: %v", key, err)
			return
		}
		log.Printf("✅  Successfully streamed %q (%d bytes)", key, a.SizeBytes)
	}
}
