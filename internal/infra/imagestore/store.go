// Package imagestore implements the image upload adapter: payload
// validation, a remote image-hosting backend, and a local-disk fallback.
// The active backend is selected per call from an explicit StorageConfig
// resolved once at startup; no shared state is mutated mid-request.
package imagestore

import (
	"context"
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
)

// MaxUploadBytes is the payload size ceiling (5 MiB).
const MaxUploadBytes = 5 << 20

// Sentinel errors for upload validation and storage failures.
var (
	// ErrEmptyPayload indicates an upload with no bytes.
	ErrEmptyPayload = errors.New("image payload is required")

	// ErrTooLarge indicates a payload over MaxUploadBytes.
	ErrTooLarge = errors.New("image must be at most 5 MiB")

	// ErrUnsupportedType indicates a payload outside the allowed image types.
	ErrUnsupportedType = errors.New("image type must be jpeg, png, gif or webp")

	// ErrUploadFailed indicates that no backend could store the payload.
	ErrUploadFailed = errors.New("image upload failed")
)

// allowedTypes maps detected MIME types to canonical file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Upload describes one validated upload request.
type Upload struct {
	Data []byte
	// Folder is a hint grouping related images at the backend
	// (e.g. "articles", "avatars").
	Folder string
}

// Store is one storage backend. Implementations must treat Delete of an
// unknown id as an error, not a panic; callers swallow delete failures.
type Store interface {
	Upload(ctx context.Context, up Upload) (*entity.Image, error)
	Delete(ctx context.Context, id string) error
}

// Validate checks the payload against the size ceiling and allowed type
// set before any storage attempt. It returns the canonical extension for
// the detected content type.
func Validate(data []byte) (ext string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	ext, ok := allowedTypes[http.DetectContentType(data)]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}
