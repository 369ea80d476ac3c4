package port

import (
	"context"
	"io"

	"github.com/casthive/media-store-go/internal/model"
)

// StoredObject describes the outcome of a backend write: where the
// bytes live and, when the backend can produce one without an extra
// round-trip, a directly reachable URL.
type StoredObject struct {
	LocationKey string
	PublicURL   *string
}

// Storage is the uniform capability over interchangeable storage
// backends. LocationKey values are opaque outside the backend that
// produced them.
type Storage interface {
	// Kind reports which backend variant this instance is.
	Kind() model.BackendKind
	// Store writes the full payload under the given category. Either the
	// object is fully durable at the returned location or an error is
	// returned and nothing references it.
	Store(ctx context.Context, category, suggestedName string, r io.Reader, size int64, contentType string) (StoredObject, error)
	// Open returns a readable stream positioned at the start of the
	// object. A missing object surfaces as ErrObjectNotFound rather than
	// an opaque I/O error.
	Open(ctx context.Context, locationKey string) (io.ReadCloser, error)
	// Remove deletes the object. Removing a location that no longer
	// exists is a success.
	Remove(ctx context.Context, locationKey string) error
}
