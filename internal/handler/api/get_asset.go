package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
)

func GetAssetHandler(renderer port.HTTPRenderer, svc port.AssetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetAsset(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, asset.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get asset details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached asset #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for asset #%s", id)
	}
}
