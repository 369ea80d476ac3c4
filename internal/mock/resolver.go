package mock

import (
	"context"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

// MockResolver implements port.BackendResolver for tests.
type MockResolver struct {
	Storage port.Storage
	Err     error

	Invalidated bool
	AskedKind   model.BackendKind
}

func (m *MockResolver) Current(ctx context.Context) (port.Storage, error) {
	return m.Storage, m.Err
}

func (m *MockResolver) Backend(ctx context.Context, kind model.BackendKind) (port.Storage, error) {
	m.AskedKind = kind
	return m.Storage, m.Err
}

func (m *MockResolver) Invalidate() {
	m.Invalidated = true
}
