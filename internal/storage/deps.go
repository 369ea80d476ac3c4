package storage

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// driveAPI is the slice of the Drive v3 surface the backend touches,
// narrowed so tests can substitute it.
type driveAPI interface {
	CreateFile(ctx context.Context, folderID, name, contentType string, r io.Reader) (*drive.File, error)
	OpenFile(ctx context.Context, fileID string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, fileID string) error
}

type driveClient struct {
	svc *drive.Service
}

func (c *driveClient) CreateFile(ctx context.Context, folderID, name, contentType string, r io.Reader) (*drive.File, error) {
	return c.svc.Files.Create(&drive.File{Name: name, Parents: []string{folderID}}).
		Media(r, googleapi.ContentType(contentType)).
		Fields("id", "webContentLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
}

func (c *driveClient) OpenFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := c.svc.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *driveClient) DeleteFile(ctx context.Context, fileID string) error {
	return c.svc.Files.Delete(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
}
