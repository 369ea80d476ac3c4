package asset

import "github.com/casthive/media-store-go/internal/model"

const (
	// MaxImageSize caps cover-art uploads.
	MaxImageSize = 2 * 1024 * 1024 // 2 MiB
	// MaxAudioSize caps episode audio uploads.
	MaxAudioSize = 200 * 1024 * 1024 // 200 MiB
)

var allowedImageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

var allowedAudioMimeTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp4":  true,
	"audio/aac":  true,
	"audio/ogg":  true,
	"audio/wav":  true,
	"audio/x-wav": true,
}

func IsMimeTypeAllowed(kind model.AssetKind, mimeType string) bool {
	if kind == model.AssetKindCoverArt {
		return allowedImageMimeTypes[mimeType]
	}
	return allowedAudioMimeTypes[mimeType]
}

func MaxSizeFor(kind model.AssetKind) int64 {
	if kind == model.AssetKindCoverArt {
		return MaxImageSize
	}
	return MaxAudioSize
}

func IsImage(mimeType string) bool {
	return allowedImageMimeTypes[mimeType]
}
