package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
)

// LocalStorage writes objects under a root directory. Categories map to
// subdirectories and location keys are paths relative to the root, so
// descriptors stay portable across deployments.
type LocalStorage struct {
	root string
}

// compile-time check: *LocalStorage must satisfy port.Storage
var _ port.Storage = (*LocalStorage)(nil)

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create storage root %q: %v", asset.ErrStorageUnavailable, root, err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Kind() model.BackendKind {
	return model.BackendKindLocal
}

func (s *LocalStorage) Store(ctx context.Context, category, suggestedName string, r io.Reader, size int64, contentType string) (port.StoredObject, error) {
	name := sanitizeFilename(suggestedName)
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return port.StoredObject{}, fmt.Errorf("%w: create category dir %q: %v", asset.ErrStorageUnavailable, category, err)
	}

	relKey, f, err := s.createUnique(dir, category, name)
	if err != nil {
		return port.StoredObject{}, err
	}
	log.Printf("saving file %q into local storage...", relKey)

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		// partial write must never be reported as success
		if rmErr := os.Remove(filepath.Join(s.root, filepath.FromSlash(relKey))); rmErr != nil {
			log.Printf("failed to clean up partial write %q: %v", relKey, rmErr)
		}
		return port.StoredObject{}, fmt.Errorf("%w: write %q: %v", asset.ErrStorageUnavailable, relKey, err)
	}
	if err := f.Close(); err != nil {
		return port.StoredObject{}, fmt.Errorf("%w: close %q: %v", asset.ErrStorageUnavailable, relKey, err)
	}

	// no direct public URL: local assets are proxied through the
	// streaming endpoint
	return port.StoredObject{LocationKey: relKey}, nil
}

func (s *LocalStorage) Open(ctx context.Context, locationKey string) (io.ReadCloser, error) {
	log.Printf("getting file %q from local storage...", locationKey)

	full, err := s.resolve(locationKey)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, mapFsErr(err)
	}
	return f, nil
}

func (s *LocalStorage) Remove(ctx context.Context, locationKey string) error {
	log.Printf("removing file %q from local storage...", locationKey)

	full, err := s.resolve(locationKey)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove %q: %v", asset.ErrStorageUnavailable, locationKey, err)
	}
	return nil
}

// resolve joins a relative location key to the root and rejects keys
// that would escape it.
func (s *LocalStorage) resolve(locationKey string) (string, error) {
	clean := path.Clean("/" + locationKey)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return "", asset.ErrObjectNotFound
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// createUnique opens a new file under dir, appending a random suffix to
// the name until no collision remains.
func (s *LocalStorage) createUnique(dir, category, name string) (string, *os.File, error) {
	candidate := name
	for attempt := 0; ; attempt++ {
		full := filepath.Join(dir, candidate)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return path.Join(category, candidate), f, nil
		}
		if !os.IsExist(err) {
			return "", nil, fmt.Errorf("%w: create %q: %v", asset.ErrStorageUnavailable, candidate, err)
		}
		if attempt >= 10 {
			return "", nil, fmt.Errorf("%w: could not find a free name for %q", asset.ErrStorageUnavailable, name)
		}
		ext := path.Ext(name)
		base := strings.TrimSuffix(name, ext)
		candidate = fmt.Sprintf("%s_%s%s", base, randomSuffix(), ext)
	}
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "0000"
	}
	return hex.EncodeToString(b)
}

// sanitizeFilename strips any path components and squashes characters
// that are unsafe in a filesystem name.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
