package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
)

type StorageConfigRepository struct {
	db *sql.DB
}

// compile-time check: *StorageConfigRepository must satisfy port.StorageConfigRepository
var _ port.StorageConfigRepository = (*StorageConfigRepository)(nil)

func NewStorageConfigRepository(db *sql.DB) *StorageConfigRepository {
	return &StorageConfigRepository{db: db}
}

func (r *StorageConfigRepository) Create(ctx context.Context, cfg *model.StorageConfig) error {
	cfg.ID = db.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	log.Printf("creating storage config %q (%s)...", cfg.Name, cfg.BackendKind)

	const query = `
      INSERT INTO storage_configs
        (id, name, backend_kind, local_root, drive_credentials_json, drive_images_folder_id, drive_audio_folder_id, active, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		cfg.ID, cfg.Name, cfg.BackendKind,
		cfg.LocalRoot, cfg.DriveCredentialsJSON,
		cfg.DriveImagesFolderID, cfg.DriveAudioFolderID,
		cfg.Active, cfg.CreatedAt, cfg.UpdatedAt,
	)
	return err
}

func (r *StorageConfigRepository) GetByID(ctx context.Context, id db.UUID) (*model.StorageConfig, error) {
	const query = selectConfig + ` WHERE id = ?`
	return scanConfig(r.db.QueryRowContext(ctx, query, id))
}

func (r *StorageConfigRepository) List(ctx context.Context) ([]model.StorageConfig, error) {
	const query = selectConfig + ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var out []model.StorageConfig
	for rows.Next() {
		var (
			cfg model.StorageConfig
		)
		if err := rows.Scan(
			&cfg.ID, &cfg.Name, &cfg.BackendKind,
			&cfg.LocalRoot, &cfg.DriveCredentialsJSON,
			&cfg.DriveImagesFolderID, &cfg.DriveAudioFolderID,
			&cfg.Active, &cfg.CreatedAt, &cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Activate marks the given config active and deactivates every other
// one, so at most a single config drives the resolver.
func (r *StorageConfigRepository) Activate(ctx context.Context, id db.UUID) error {
	log.Printf("activating storage config #%s...", id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE storage_configs SET active = 0 WHERE active = 1`); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE storage_configs SET active = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC().Truncate(time.Second), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func (r *StorageConfigRepository) GetActive(ctx context.Context) (*model.StorageConfig, error) {
	const query = selectConfig + ` WHERE active = 1 LIMIT 1`
	return scanConfig(r.db.QueryRowContext(ctx, query))
}

const selectConfig = `
      SELECT id, name, backend_kind, local_root, drive_credentials_json, drive_images_folder_id, drive_audio_folder_id, active, created_at, updated_at
      FROM storage_configs`

func scanConfig(row *sql.Row) (*model.StorageConfig, error) {
	var cfg model.StorageConfig
	if err := row.Scan(
		&cfg.ID, &cfg.Name, &cfg.BackendKind,
		&cfg.LocalRoot, &cfg.DriveCredentialsJSON,
		&cfg.DriveImagesFolderID, &cfg.DriveAudioFolderID,
		&cfg.Active, &cfg.CreatedAt, &cfg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cfg, nil
}
