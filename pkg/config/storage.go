package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// placeholderKeys are sample values shipped in env templates; credentials
// matching one of these leave the remote backend disabled.
var placeholderKeys = map[string]bool{
	"":                  true,
	"your_api_key":      true,
	"your_api_key_here": true,
	"changeme":          true,
	"placeholder":       true,
}

// RemoteStorageConfig configures the remote image-hosting backend.
type RemoteStorageConfig struct {
	APIKey    string        `yaml:"api_key"`
	UploadURL string        `yaml:"upload_url"`
	DeleteURL string        `yaml:"delete_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Usable reports whether the remote backend has real, non-placeholder
// credentials and endpoints.
func (c RemoteStorageConfig) Usable() bool {
	return !placeholderKeys[c.APIKey] && c.UploadURL != ""
}

// LocalStorageConfig configures the local-disk fallback backend.
type LocalStorageConfig struct {
	// Dir is the directory uploads are written to.
	Dir string `yaml:"dir"`
	// BaseURL is the externally visible server root used to build
	// locally served image URLs.
	BaseURL string `yaml:"base_url"`
}

// StorageConfig is the explicit image-storage configuration passed into
// the upload adapter at startup.
type StorageConfig struct {
	Remote RemoteStorageConfig `yaml:"remote"`
	Local  LocalStorageConfig  `yaml:"local"`
}

// LoadStorageConfig resolves the storage configuration. Environment
// variables provide the base values; when STORAGE_CONFIG_FILE names a
// YAML file, its contents take precedence over the environment.
func LoadStorageConfig() (StorageConfig, error) {
	cfg := StorageConfig{
		Remote: RemoteStorageConfig{
			APIKey:    GetEnvString("IMAGE_HOST_API_KEY", ""),
			UploadURL: GetEnvString("IMAGE_HOST_UPLOAD_URL", ""),
			DeleteURL: GetEnvString("IMAGE_HOST_DELETE_URL", ""),
			Timeout:   GetEnvDuration("IMAGE_HOST_TIMEOUT", 15*time.Second),
		},
		Local: LocalStorageConfig{
			Dir:     GetEnvString("UPLOAD_DIR", "./uploads"),
			BaseURL: GetEnvString("BASE_URL", "http://localhost:8080"),
		},
	}

	path := os.Getenv("STORAGE_CONFIG_FILE")
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read storage config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse storage config file: %w", err)
	}
	return cfg, nil
}
