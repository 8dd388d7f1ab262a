package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"defaults", "/articles", 1, 10, false},
		{"explicit", "/articles?page=3&limit=25", 3, 25, false},
		{"page only", "/articles?page=2", 2, 10, false},
		{"zero page", "/articles?page=0", 0, 0, true},
		{"negative page", "/articles?page=-1", 0, 0, true},
		{"non-numeric page", "/articles?page=abc", 0, 0, true},
		{"zero limit", "/articles?limit=0", 0, 0, true},
		{"limit over max", "/articles?limit=101", 0, 0, true},
		{"limit at max", "/articles?limit=100", 1, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := ParseQueryParams(r, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQueryParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("ParseQueryParams() = %+v, want page %d limit %d", got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
	}
	for _, tt := range tests {
		if got := CalculateOffset(tt.page, tt.limit); got != tt.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 1},
		{5, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestNewMetadata(t *testing.T) {
	md := NewMetadata(Params{Page: 2, Limit: 10}, 25)
	want := Metadata{Page: 2, Limit: 10, Total: 25, Pages: 3}
	if diff := cmp.Diff(want, md); diff != "" {
		t.Errorf("NewMetadata() mismatch (-want +got):\n%s", diff)
	}
}
