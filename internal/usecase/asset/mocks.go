package asset

import (
	"bytes"
	"context"
	"io"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type mockRepo struct {
	assetRecord *model.MediaAsset

	getErr    error
	createErr error
	deleteErr error

	getCalled    bool
	getByKeyArg  string
	created      *model.MediaAsset
	deleteCalled bool
	deletedID    db.UUID
}

func (m *mockRepo) Create(ctx context.Context, a *model.MediaAsset) error {
	m.created = a
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = db.NewUUID()
	return nil
}
func (m *mockRepo) GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.assetRecord, nil
}
func (m *mockRepo) GetByLocationKey(ctx context.Context, key string) (*model.MediaAsset, error) {
	m.getByKeyArg = key
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.assetRecord, nil
}
func (m *mockRepo) Delete(ctx context.Context, id db.UUID) error {
	m.deleteCalled = true
	m.deletedID = id
	return m.deleteErr
}

type mockStorage struct {
	kind      model.BackendKind
	stored    port.StoredObject
	content   []byte

	storeErr  error
	openErr   error
	removeErr error

	storeCalled     bool
	storedCategory  string
	storedName      string
	storedBytes     []byte
	removeCalled    bool
	removedLocation string
	openCalled      bool
}

func (m *mockStorage) Kind() model.BackendKind {
	if m.kind == "" {
		return model.BackendKindLocal
	}
	return m.kind
}
func (m *mockStorage) Store(ctx context.Context, category, name string, r io.Reader, size int64, contentType string) (port.StoredObject, error) {
	m.storeCalled = true
	m.storedCategory = category
	m.storedName = name
	data, err := io.ReadAll(r)
	if err != nil {
		return port.StoredObject{}, err
	}
	m.storedBytes = data
	if m.storeErr != nil {
		return port.StoredObject{}, m.storeErr
	}
	if m.stored.LocationKey == "" {
		return port.StoredObject{LocationKey: category + "/" + name}, nil
	}
	return m.stored, nil
}
func (m *mockStorage) Open(ctx context.Context, locationKey string) (io.ReadCloser, error) {
	m.openCalled = true
	if m.openErr != nil {
		return nil, m.openErr
	}
	if m.content != nil {
		return io.NopCloser(bytes.NewReader(m.content)), nil
	}
	return io.NopCloser(bytes.NewReader([]byte("dummy"))), nil
}
func (m *mockStorage) Remove(ctx context.Context, locationKey string) error {
	m.removeCalled = true
	m.removedLocation = locationKey
	return m.removeErr
}

type mockResolver struct {
	strg       port.Storage
	currentErr error
	backendErr error

	currentCalled     bool
	backendCalled     bool
	requestedKind     model.BackendKind
	invalidateCalled  bool
}

func (m *mockResolver) Current(ctx context.Context) (port.Storage, error) {
	m.currentCalled = true
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.strg, nil
}
func (m *mockResolver) Backend(ctx context.Context, kind model.BackendKind) (port.Storage, error) {
	m.backendCalled = true
	m.requestedKind = kind
	if m.backendErr != nil {
		return nil, m.backendErr
	}
	return m.strg, nil
}
func (m *mockResolver) Invalidate() { m.invalidateCalled = true }

type mockCache struct {
	delDetailsCalled bool
	delEtagCalled    bool
	delErr           error
}

func (m *mockCache) GetAssetDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil
}
func (m *mockCache) GetEtagAssetDetails(ctx context.Context, id db.UUID) (string, error) {
	return "", nil
}
func (m *mockCache) SetAssetDetails(ctx context.Context, id db.UUID, data []byte)   {}
func (m *mockCache) SetEtagAssetDetails(ctx context.Context, id db.UUID, etag string) {}
func (m *mockCache) DeleteAssetDetails(ctx context.Context, id db.UUID) error {
	m.delDetailsCalled = true
	return m.delErr
}
func (m *mockCache) DeleteEtagAssetDetails(ctx context.Context, id db.UUID) error {
	m.delEtagCalled = true
	return m.delErr
}

type mockSaver struct {
	out *model.MediaAsset
	err error

	called bool
	input  port.SaveAssetInput
}

func (m *mockSaver) SaveAsset(ctx context.Context, in port.SaveAssetInput) (*model.MediaAsset, error) {
	m.called = true
	m.input = in
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

type mockDeleter struct {
	err error

	called    bool
	deletedID db.UUID
}

func (m *mockDeleter) DeleteAsset(ctx context.Context, id db.UUID) error {
	m.called = true
	m.deletedID = id
	return m.err
}
