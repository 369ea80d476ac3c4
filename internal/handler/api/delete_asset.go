package api

import (
	"log"
	"net/http"

	"github.com/casthive/media-store-go/internal/port"
)

// DeleteAssetHandler deletes an asset by ID. Deleting an asset that no
// longer exists succeeds.
func DeleteAssetHandler(svc port.AssetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteAsset(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to delete asset", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted asset #%s", id)
	}
}
