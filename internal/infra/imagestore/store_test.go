package imagestore_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"inkpress/internal/infra/imagestore"
)

// Minimal valid magic bytes per format; DetectContentType only needs
// the signature.
var (
	pngPayload  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}
	gifPayload  = append([]byte("GIF89a"), 0, 0, 0, 0)
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantErr error
	}{
		{"png", pngPayload, "png", nil},
		{"jpeg", jpegPayload, "jpg", nil},
		{"gif", gifPayload, "gif", nil},
		{"empty", nil, "", imagestore.ErrEmptyPayload},
		{"plain text", []byte("not an image at all"), "", imagestore.ErrUnsupportedType},
		{"pdf", []byte("%PDF-1.4 ......."), "", imagestore.ErrUnsupportedType},
		{"oversized", bytes.Repeat([]byte{0x89}, imagestore.MaxUploadBytes+1), "", imagestore.ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := imagestore.Validate(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if ext != tt.wantExt {
				t.Errorf("Validate() ext = %q, want %q", ext, tt.wantExt)
			}
		})
	}
}

func TestIsLocalID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"img_b2f9c6e1.png", true},
		{"remoteabc123", false},
		{"img_../../etc/passwd", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := imagestore.IsLocalID(tt.id); got != tt.want {
			t.Errorf("IsLocalID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestLocalStoreDeleteRejectsForeignID(t *testing.T) {
	store := newLocalStore(t)

	if err := store.Delete(context.Background(), "remote123"); err == nil {
		t.Error("Delete() of a non-local id succeeded, want error")
	}
}

func TestLocalStoreDeleteUnknownFile(t *testing.T) {
	store := newLocalStore(t)

	if err := store.Delete(context.Background(), "img_does-not-exist.png"); err == nil {
		t.Error("Delete() of a missing file succeeded, want error")
	}
}
