package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/casthive/media-store-go/internal/usecase/asset"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

type fakeDriveAPI struct {
	created *drive.File

	createErr error
	openErr   error
	deleteErr error

	createdFolder      string
	createdName        string
	createdContentType string
	createdBytes       []byte
	openedID           string
	deletedID          string
}

func (f *fakeDriveAPI) CreateFile(ctx context.Context, folderID, name, contentType string, r io.Reader) (*drive.File, error) {
	f.createdFolder = folderID
	f.createdName = name
	f.createdContentType = contentType
	data, _ := io.ReadAll(r)
	f.createdBytes = data
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &drive.File{Id: "file-id-1"}, nil
}

func (f *fakeDriveAPI) OpenFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	f.openedID = fileID
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader([]byte("drive bytes"))), nil
}

func (f *fakeDriveAPI) DeleteFile(ctx context.Context, fileID string) error {
	f.deletedID = fileID
	return f.deleteErr
}

func newTestDriveStorage(api driveAPI) *DriveStorage {
	return &DriveStorage{api: api, imagesFolderID: "folder-images", audioFolderID: "folder-audio"}
}

func TestDriveStorage_StoreRoutesByCategory(t *testing.T) {
	tests := []struct {
		category   string
		wantFolder string
	}{
		{"images", "folder-images"},
		{"audio", "folder-audio"},
	}
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			api := &fakeDriveAPI{}
			s := newTestDriveStorage(api)

			obj, err := s.Store(context.Background(), tc.category, "f.bin", bytes.NewReader([]byte("xx")), 2, "application/octet-stream")
			if err != nil {
				t.Fatalf("Store() error: %v", err)
			}
			if api.createdFolder != tc.wantFolder {
				t.Errorf("folder = %q; want %q", api.createdFolder, tc.wantFolder)
			}
			if obj.LocationKey != "file-id-1" {
				t.Errorf("location key = %q; want the remote file ID", obj.LocationKey)
			}
		})
	}
}

func TestDriveStorage_StoreUnknownCategory(t *testing.T) {
	s := newTestDriveStorage(&fakeDriveAPI{})

	if _, err := s.Store(context.Background(), "videos", "f.bin", bytes.NewReader(nil), 0, ""); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestDriveStorage_StoreCapturesPublicURL(t *testing.T) {
	api := &fakeDriveAPI{created: &drive.File{Id: "abc", WebContentLink: "https://drive.example.com/abc"}}
	s := newTestDriveStorage(api)

	obj, err := s.Store(context.Background(), "audio", "ep.mp3", bytes.NewReader([]byte("x")), 1, "audio/mpeg")
	if err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if obj.PublicURL == nil || *obj.PublicURL != "https://drive.example.com/abc" {
		t.Errorf("public URL = %v; want the webContentLink captured at upload time", obj.PublicURL)
	}
}

func TestDriveStorage_StoreAuthFailure(t *testing.T) {
	api := &fakeDriveAPI{createErr: &googleapi.Error{Code: http.StatusForbidden, Message: "forbidden"}}
	s := newTestDriveStorage(api)

	_, err := s.Store(context.Background(), "audio", "ep.mp3", bytes.NewReader(nil), 0, "audio/mpeg")
	if !errors.Is(err, asset.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestDriveStorage_OpenMissingFile(t *testing.T) {
	api := &fakeDriveAPI{openErr: &googleapi.Error{Code: http.StatusNotFound}}
	s := newTestDriveStorage(api)

	if _, err := s.Open(context.Background(), "gone"); !errors.Is(err, asset.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestDriveStorage_Open(t *testing.T) {
	api := &fakeDriveAPI{}
	s := newTestDriveStorage(api)

	rc, err := s.Open(context.Background(), "file-id-1")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer rc.Close()
	if api.openedID != "file-id-1" {
		t.Errorf("opened %q; want %q", api.openedID, "file-id-1")
	}
	if got, _ := io.ReadAll(rc); string(got) != "drive bytes" {
		t.Errorf("read %q; want %q", got, "drive bytes")
	}
}

func TestDriveStorage_RemoveIsIdempotent(t *testing.T) {
	api := &fakeDriveAPI{deleteErr: &googleapi.Error{Code: http.StatusNotFound}}
	s := newTestDriveStorage(api)

	if err := s.Remove(context.Background(), "gone"); err != nil {
		t.Fatalf("removing an already-deleted file must succeed, got %v", err)
	}
}

func TestDriveStorage_RemoveFailure(t *testing.T) {
	api := &fakeDriveAPI{deleteErr: &googleapi.Error{Code: http.StatusInternalServerError}}
	s := newTestDriveStorage(api)

	if err := s.Remove(context.Background(), "id"); !errors.Is(err, asset.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
