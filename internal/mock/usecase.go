package mock

import (
	"context"
	"io"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

// MockAssetSaver implements port.AssetSaver for tests.
type MockAssetSaver struct {
	Out    *model.MediaAsset
	Err    error
	Called bool
	In     port.SaveAssetInput
}

func (m *MockAssetSaver) SaveAsset(ctx context.Context, in port.SaveAssetInput) (*model.MediaAsset, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAssetGetter implements port.AssetGetter for tests.
type MockAssetGetter struct {
	Out    *model.MediaAsset
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockAssetGetter) GetAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockAssetStreamer implements port.AssetStreamer for tests.
type MockAssetStreamer struct {
	Out    *model.MediaAsset
	Body   io.ReadCloser
	Err    error
	Called bool
	ID     db.UUID
	Key    string
}

func (m *MockAssetStreamer) StreamAsset(ctx context.Context, id db.UUID) (*model.MediaAsset, io.ReadCloser, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Body, m.Err
}

func (m *MockAssetStreamer) StreamByLocationKey(ctx context.Context, key string) (*model.MediaAsset, io.ReadCloser, error) {
	m.Called = true
	m.Key = key
	return m.Out, m.Body, m.Err
}

// MockAssetDeleter implements port.AssetDeleter for tests.
type MockAssetDeleter struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockAssetDeleter) DeleteAsset(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockAudioReplacer implements port.AudioReplacer for tests.
type MockAudioReplacer struct {
	Out    *model.MediaAsset
	Err    error
	Called bool
	ID     db.UUID
	In     port.SaveAssetInput
}

func (m *MockAudioReplacer) ReplaceAudio(ctx context.Context, id db.UUID, in port.SaveAssetInput) (*model.MediaAsset, error) {
	m.Called = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}
