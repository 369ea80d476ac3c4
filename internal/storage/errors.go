package storage

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/casthive/media-store-go/internal/usecase/asset"
	"google.golang.org/api/googleapi"
)

func mapDriveErr(err error) error {
	if err == nil {
		return nil
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
		return asset.ErrObjectNotFound
	}
	// auth, rate-limit, connectivity: all retryable-class for callers
	return fmt.Errorf("%w: %v", asset.ErrStorageUnavailable, err)
}

func mapFsErr(err error) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return asset.ErrObjectNotFound
	}
	return fmt.Errorf("%w: %v", asset.ErrStorageUnavailable, err)
}
