package mock

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/port"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called bool
	Getter port.AssetGetter
	ID     db.UUID
}

func (m *MockHTTPRenderer) RenderGetAsset(ctx context.Context, getter port.AssetGetter, id db.UUID) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	m.ID = id
	return m.Data, m.Etag, m.Err
}
