package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/google/uuid"
)

func TestStorageConfigRepository_Create(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewStorageConfigRepository(sqlDB)

	root := "/var/lib/media"
	cfg := &model.StorageConfig{
		Name:        "local-disk",
		BackendKind: model.BackendKindLocal,
		LocalRoot:   &root,
	}

	mock.ExpectExec("INSERT INTO storage_configs").
		WithArgs(
			sqlmock.AnyArg(), // ID
			cfg.Name,
			cfg.BackendKind,
			cfg.LocalRoot,
			cfg.DriveCredentialsJSON,
			cfg.DriveImagesFolderID,
			cfg.DriveAudioFolderID,
			cfg.Active,
			sqlmock.AnyArg(), // CreatedAt
			sqlmock.AnyArg(), // UpdatedAt
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), cfg); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}
	if cfg.ID == (db.UUID{}) {
		t.Error("expected Create to fill in the ID")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestStorageConfigRepository_Activate_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewStorageConfigRepository(sqlDB)

	id := db.NewUUID()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE storage_configs SET active = 0 WHERE active = 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE storage_configs SET active = 1, updated_at = ? WHERE id = ?`)).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Activate(context.Background(), id); err != nil {
		t.Errorf("Activate() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestStorageConfigRepository_Activate_UnknownID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewStorageConfigRepository(sqlDB)

	id := db.NewUUID()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE storage_configs SET active = 0 WHERE active = 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE storage_configs SET active = 1, updated_at = ? WHERE id = ?`)).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Activate(context.Background(), id); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestStorageConfigRepository_GetActive(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewStorageConfigRepository(sqlDB)

	id := db.NewUUID()
	idBytes, _ := uuid.UUID(id).MarshalBinary()
	creds := `{"type":"service_account"}`
	rows := sqlmock.NewRows([]string{
		"id", "name", "backend_kind", "local_root", "drive_credentials_json",
		"drive_images_folder_id", "drive_audio_folder_id", "active", "created_at", "updated_at",
	}).AddRow(idBytes, "drive-prod", "cloud_drive", nil, creds, "folder-img", "folder-aud", true, time.Now(), time.Now())

	mock.ExpectQuery("SELECT .+ FROM storage_configs").
		WillReturnRows(rows)

	got, err := repo.GetActive(context.Background())
	if err != nil {
		t.Fatalf("GetActive() returned unexpected error: %v", err)
	}
	if got.BackendKind != model.BackendKindCloudDrive {
		t.Errorf("backend kind = %q; want cloud_drive", got.BackendKind)
	}
	if got.DriveCredentialsJSON == nil || *got.DriveCredentialsJSON != creds {
		t.Error("credentials not scanned back")
	}
	if !got.Active {
		t.Error("active flag not scanned back")
	}
}

func TestStorageConfigRepository_GetActive_None(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewStorageConfigRepository(sqlDB)

	mock.ExpectQuery("SELECT .+ FROM storage_configs").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetActive(context.Background()); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
