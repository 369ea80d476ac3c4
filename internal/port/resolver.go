package port

import (
	"context"

	"github.com/casthive/media-store-go/internal/model"
)

// BackendResolver derives storage backends from the persisted active
// storage configuration.
type BackendResolver interface {
	// Current returns the backend for the active configuration,
	// rebuilding it when the cached instance is older than the refresh
	// interval.
	Current(ctx context.Context) (Storage, error)
	// Backend instantiates the given backend kind from the active
	// configuration, regardless of which kind is active. Needed to read
	// assets bound to a backend that is no longer the active one.
	Backend(ctx context.Context, kind model.BackendKind) (Storage, error)
	// Invalidate forces the next resolution to re-read the configuration
	// instead of waiting out the refresh interval.
	Invalidate()
}
