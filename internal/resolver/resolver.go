package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/storage"
	"github.com/casthive/media-store-go/internal/usecase/asset"
)

// DefaultRefreshInterval bounds how stale the cached backend may get
// before the active storage configuration is re-read.
const DefaultRefreshInterval = 5 * time.Second

type buildFunc func(ctx context.Context, cfg *model.StorageConfig, kind model.BackendKind) (port.Storage, error)

// Resolver caches the backend derived from the active storage
// configuration so that an admin switching backends takes effect within
// the refresh interval without a restart, while avoiding a
// configuration read on every upload/download.
type Resolver struct {
	repo  port.StorageConfigRepository
	ttl   time.Duration
	now   func() time.Time
	build buildFunc

	mu       sync.RWMutex
	cached   port.Storage
	cachedAt time.Time
}

// compile-time check: *Resolver must satisfy port.BackendResolver
var _ port.BackendResolver = (*Resolver)(nil)

// New constructs a resolver over the given config repository. A
// non-positive ttl falls back to DefaultRefreshInterval.
func New(repo port.StorageConfigRepository, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultRefreshInterval
	}
	return &Resolver{repo: repo, ttl: ttl, now: time.Now, build: buildBackend}
}

// Current returns the backend for the active configuration. The cached
// instance is reused until it is older than the refresh interval.
// Concurrent rebuilds when the cache is stale are tolerated: each
// produces an equivalent instance and the cache is only ever replaced
// by a fully constructed one.
func (r *Resolver) Current(ctx context.Context) (port.Storage, error) {
	r.mu.RLock()
	cached, at := r.cached, r.cachedAt
	r.mu.RUnlock()
	if cached != nil && r.now().Sub(at) < r.ttl {
		return cached, nil
	}

	cfg, err := r.activeConfig(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("rebuilding storage backend from config %q (%s)...", cfg.Name, cfg.BackendKind)
	strg, err := r.build(ctx, cfg, cfg.BackendKind)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cached = strg
	r.cachedAt = r.now()
	r.mu.Unlock()
	return strg, nil
}

// Backend instantiates the requested kind from the active
// configuration. Assets stay bound to the backend kind that stored
// them, so reads of older assets may need the non-active kind.
func (r *Resolver) Backend(ctx context.Context, kind model.BackendKind) (port.Storage, error) {
	cur, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	if cur.Kind() == kind {
		return cur, nil
	}

	cfg, err := r.activeConfig(ctx)
	if err != nil {
		return nil, err
	}
	return r.build(ctx, cfg, kind)
}

// Invalidate drops the cached backend so the next resolution re-reads
// the configuration instead of waiting out the refresh interval. Admin
// actions that change the active configuration call this.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

func (r *Resolver) activeConfig(ctx context.Context) (*model.StorageConfig, error) {
	cfg, err := r.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no active storage configuration", asset.ErrStorageUnavailable)
		}
		return nil, fmt.Errorf("load active storage configuration: %w", err)
	}
	return cfg, nil
}

func buildBackend(ctx context.Context, cfg *model.StorageConfig, kind model.BackendKind) (port.Storage, error) {
	switch kind {
	case model.BackendKindLocal:
		if cfg.LocalRoot == nil || *cfg.LocalRoot == "" {
			return nil, fmt.Errorf("%w: config %q carries no local root", asset.ErrStorageUnavailable, cfg.Name)
		}
		return storage.NewLocalStorage(*cfg.LocalRoot)
	case model.BackendKindCloudDrive:
		if cfg.DriveCredentialsJSON == nil || cfg.DriveImagesFolderID == nil || cfg.DriveAudioFolderID == nil {
			return nil, fmt.Errorf("%w: config %q carries no drive credentials or folders", asset.ErrStorageUnavailable, cfg.Name)
		}
		return storage.NewDriveStorage(ctx, []byte(*cfg.DriveCredentialsJSON), *cfg.DriveImagesFolderID, *cfg.DriveAudioFolderID)
	default:
		return nil, fmt.Errorf("%w: unknown backend kind %q", asset.ErrStorageUnavailable, kind)
	}
}
