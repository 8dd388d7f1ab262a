package pathutil

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestObjectID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid hex", "65f1a2b3c4d5e6f708192a3b", false},
		{"too short", "65f1a2b3", true},
		{"non-hex", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"empty", "", true},
		{"numeric", "12345", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/articles/x", nil)
			r.SetPathValue("id", tt.value)

			id, err := ObjectID(r, "id")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("ObjectID() error = %v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ObjectID() error = %v", err)
			}
			if id.Hex() != tt.value {
				t.Errorf("ObjectID() = %s, want %s", id.Hex(), tt.value)
			}
		})
	}
}
