package mock

import (
	"context"
	"database/sql"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
)

// MockStorageConfigRepo implements port.StorageConfigRepository for
// tests.
type MockStorageConfigRepo struct {
	Configs []model.StorageConfig

	CreateErr   error
	ListErr     error
	ActivateErr error

	CreatedCfg  *model.StorageConfig
	ActivatedID db.UUID
}

func (m *MockStorageConfigRepo) Create(ctx context.Context, cfg *model.StorageConfig) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	cfg.ID = db.NewUUID()
	m.CreatedCfg = cfg
	return nil
}

func (m *MockStorageConfigRepo) GetByID(ctx context.Context, id db.UUID) (*model.StorageConfig, error) {
	for i := range m.Configs {
		if m.Configs[i].ID == id {
			return &m.Configs[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockStorageConfigRepo) List(ctx context.Context) ([]model.StorageConfig, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Configs, nil
}

func (m *MockStorageConfigRepo) Activate(ctx context.Context, id db.UUID) error {
	if m.ActivateErr != nil {
		return m.ActivateErr
	}
	m.ActivatedID = id
	return nil
}

func (m *MockStorageConfigRepo) GetActive(ctx context.Context) (*model.StorageConfig, error) {
	for i := range m.Configs {
		if m.Configs[i].Active {
			return &m.Configs[i], nil
		}
	}
	return nil, sql.ErrNoRows
}
