package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/port"
	"github.com/casthive/media-store-go/internal/usecase/asset"
)

// DriveStorage stores objects in Google Drive. Each category routes to
// a pre-provisioned folder and the location key is the remote file ID.
type DriveStorage struct {
	api            driveAPI
	imagesFolderID string
	audioFolderID  string
}

// compile-time check: *DriveStorage must satisfy port.Storage
var _ port.Storage = (*DriveStorage)(nil)

// NewDriveStorage authenticates with a service-account credential and
// builds a Drive-backed storage instance.
func NewDriveStorage(ctx context.Context, credentialsJSON []byte, imagesFolderID, audioFolderID string) (*DriveStorage, error) {
	log.Println("initialising drive client...")

	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse service account credentials: %v", asset.ErrStorageUnavailable, err)
	}
	svc, err := drive.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, mapDriveErr(err)
	}
	return &DriveStorage{
		api:            &driveClient{svc: svc},
		imagesFolderID: imagesFolderID,
		audioFolderID:  audioFolderID,
	}, nil
}

func (s *DriveStorage) Kind() model.BackendKind {
	return model.BackendKindCloudDrive
}

func (s *DriveStorage) Store(ctx context.Context, category, suggestedName string, r io.Reader, size int64, contentType string) (port.StoredObject, error) {
	folderID, err := s.folderFor(category)
	if err != nil {
		return port.StoredObject{}, err
	}
	log.Printf("uploading file %q to drive folder %q...", suggestedName, folderID)

	f, err := s.api.CreateFile(ctx, folderID, sanitizeFilename(suggestedName), contentType, r)
	if err != nil {
		return port.StoredObject{}, mapDriveErr(err)
	}

	obj := port.StoredObject{LocationKey: f.Id}
	// captured at upload time rather than recomputed on every read
	if f.WebContentLink != "" {
		link := f.WebContentLink
		obj.PublicURL = &link
	}
	return obj, nil
}

func (s *DriveStorage) Open(ctx context.Context, locationKey string) (io.ReadCloser, error) {
	log.Printf("downloading drive file %q...", locationKey)

	rc, err := s.api.OpenFile(ctx, locationKey)
	if err != nil {
		return nil, mapDriveErr(err)
	}
	return rc, nil
}

func (s *DriveStorage) Remove(ctx context.Context, locationKey string) error {
	log.Printf("deleting drive file %q...", locationKey)

	if err := s.api.DeleteFile(ctx, locationKey); err != nil {
		mapped := mapDriveErr(err)
		// deleting a file that is already gone is a success
		if errors.Is(mapped, asset.ErrObjectNotFound) {
			return nil
		}
		return mapped
	}
	return nil
}

func (s *DriveStorage) folderFor(category string) (string, error) {
	switch category {
	case "images":
		return s.imagesFolderID, nil
	case "audio":
		return s.audioFolderID, nil
	default:
		return "", fmt.Errorf("unknown storage category %q", category)
	}
}
