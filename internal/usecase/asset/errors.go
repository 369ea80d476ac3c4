package asset

import "errors"

var (
	// ErrObjectNotFound is returned when a backend has no object at the
	// requested location.
	ErrObjectNotFound = errors.New("storage: object not found")
	// ErrStorageUnavailable covers backend I/O, auth and connectivity
	// failures. Callers treat it as retryable.
	ErrStorageUnavailable = errors.New("storage: unavailable")
	// ErrAssetNotFound is returned when no metadata row matches the
	// requested ID or location key.
	ErrAssetNotFound = errors.New("asset: not found")
)
