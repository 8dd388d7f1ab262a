package imagestore

import (
	"context"
	"log/slog"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
	"inkpress/pkg/config"
)

// Resolver is the upload adapter handed to the services. It validates
// payloads, prefers the remote backend when one is configured, and falls
// back to local disk when the remote attempt fails or the breaker is open.
type Resolver struct {
	remote *RemoteStore // nil when credentials are absent or placeholders
	local  *LocalStore
	logger *slog.Logger
}

// NewResolver builds the adapter from an explicit StorageConfig.
// The remote backend is wired only when the config carries usable
// credentials; the decision is made once, here, not per request.
func NewResolver(cfg config.StorageConfig, logger *slog.Logger) (*Resolver, error) {
	local, err := NewLocalStore(cfg.Local)
	if err != nil {
		return nil, err
	}

	r := &Resolver{local: local, logger: logger}
	if cfg.Remote.Usable() {
		r.remote = NewRemoteStore(cfg.Remote)
		logger.Info("image storage: remote backend enabled")
	} else {
		logger.Info("image storage: local backend only")
	}
	return r, nil
}

// Upload validates the payload and stores it, remote first when
// available, local disk otherwise.
func (r *Resolver) Upload(ctx context.Context, data []byte, folder string) (*entity.Image, error) {
	if _, err := Validate(data); err != nil {
		return nil, err
	}
	up := Upload{Data: data, Folder: folder}

	if r.remote != nil {
		img, err := r.remote.Upload(ctx, up)
		if err == nil {
			metrics.RecordImageUpload("remote", true)
			return img, nil
		}
		metrics.RecordImageUpload("remote", false)
		r.logger.Warn("remote image upload failed, falling back to local storage",
			slog.String("error", err.Error()))
	}

	img, err := r.local.Upload(ctx, up)
	if err != nil {
		metrics.RecordImageUpload("local", false)
		return nil, ErrUploadFailed
	}
	metrics.RecordImageUpload("local", true)
	return img, nil
}

// Delete removes a stored image, routing by id shape: local filenames go
// to disk, everything else to the remote host. Failures are returned to
// the caller, who is expected to log and swallow them; image deletion
// never blocks a primary operation.
func (r *Resolver) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if IsLocalID(id) {
		return r.local.Delete(ctx, id)
	}
	if r.remote == nil {
		r.logger.Warn("cannot delete remote image without remote credentials",
			slog.String("image_id", id))
		return nil
	}
	return r.remote.Delete(ctx, id)
}
