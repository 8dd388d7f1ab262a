package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"inkpress/internal/domain/entity"
	"inkpress/internal/resilience/circuitbreaker"
	"inkpress/pkg/config"
)

// RemoteStore uploads images to the configured image-hosting service
// over a key-authenticated multipart HTTP API. All calls go through a
// circuit breaker so a failing host stops being asked quickly.
type RemoteStore struct {
	cfg        config.RemoteStorageConfig
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewRemoteStore creates a RemoteStore with the given configuration.
func NewRemoteStore(cfg config.RemoteStorageConfig) *RemoteStore {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &RemoteStore{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    circuitbreaker.New(circuitbreaker.ImageHostConfig()),
	}
}

// remoteUploadResponse is the host's upload reply.
type remoteUploadResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload sends the payload to the remote host and returns its stored
// {id, url} pair.
func (s *RemoteStore) Upload(ctx context.Context, up Upload) (*entity.Image, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.doUpload(ctx, up)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.Image), nil
}

func (s *RemoteStore) doUpload(ctx context.Context, up Upload) (*entity.Image, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("key", s.cfg.APIKey); err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}
	if up.Folder != "" {
		if err := mw.WriteField("folder", up.Folder); err != nil {
			return nil, fmt.Errorf("remote upload: %w", err)
		}
	}
	part, err := mw.CreateFormFile("image", "upload")
	if err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.UploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote upload: host returned %d: %s", resp.StatusCode, payload)
	}

	var out remoteUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("remote upload: decode response: %w", err)
	}
	if !out.Success || out.Data.URL == "" {
		return nil, fmt.Errorf("remote upload: host rejected the image")
	}
	return &entity.Image{ID: out.Data.ID, URL: out.Data.URL}, nil
}

// Delete asks the remote host to remove a stored image by id.
func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		url := fmt.Sprintf("%s/%s?key=%s", s.cfg.DeleteURL, id, s.cfg.APIKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
		if err != nil {
			return nil, fmt.Errorf("remote delete: %w", err)
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("remote delete: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("remote delete: host returned %d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}
