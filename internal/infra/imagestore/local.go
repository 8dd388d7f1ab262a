package imagestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inkpress/internal/domain/entity"
	"inkpress/pkg/config"
)

// localPrefix marks filenames produced by the local backend. The prefix
// is how Delete routes a stored id back to disk instead of the remote host.
const localPrefix = "img_"

// LocalStore persists images on the local filesystem and serves them
// under the /uploads/ path.
type LocalStore struct {
	cfg config.LocalStorageConfig
}

// NewLocalStore creates a LocalStore, ensuring the upload directory exists.
func NewLocalStore(cfg config.LocalStorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{cfg: cfg}, nil
}

// Upload writes the payload to disk under a generated filename and
// returns the locally served URL.
func (s *LocalStore) Upload(_ context.Context, up Upload) (*entity.Image, error) {
	ext, err := Validate(up.Data)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s%s.%s", localPrefix, uuid.NewString(), ext)
	path := filepath.Join(s.cfg.Dir, name)
	if err := os.WriteFile(path, up.Data, 0o644); err != nil {
		return nil, fmt.Errorf("local upload: %w", err)
	}

	return &entity.Image{
		ID:  name,
		URL: strings.TrimSuffix(s.cfg.BaseURL, "/") + "/uploads/" + name,
	}, nil
}

// IsLocalID reports whether a stored image id names a file written by
// this backend.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localPrefix) && !strings.ContainsAny(id, "/\\")
}

// Delete removes a locally stored file. Ids that do not match the local
// naming pattern are rejected before touching the filesystem.
func (s *LocalStore) Delete(_ context.Context, id string) error {
	if !IsLocalID(id) {
		return fmt.Errorf("local delete: %q is not a local image id", id)
	}
	if err := os.Remove(filepath.Join(s.cfg.Dir, id)); err != nil {
		return fmt.Errorf("local delete: %w", err)
	}
	return nil
}
