package pathutil_test

import (
	"errors"
	"testing"

	"fineart/internal/handler/http/pathutil"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"valid", "/api/articles/123", "/api/articles/", 123, false},
		{"not a number", "/api/articles/abc", "/api/articles/", 0, true},
		{"zero", "/api/articles/0", "/api/articles/", 0, true},
		{"negative", "/api/articles/-1", "/api/articles/", 0, true},
		{"empty", "/api/articles/", "/api/articles/", 0, true},
		{"trailing garbage", "/api/articles/1x", "/api/articles/", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidID) {
					t.Fatalf("want ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ExtractID(%q) = %d, %v; want %d", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/api/articles/123", "/api/articles/:id"},
		{"/api/articles/123/", "/api/articles/:id"},
		{"/api/artworks/7", "/api/artworks/:id"},
		{"/api/artists/42", "/api/artists/:id"},
		{"/api/exhibitions/9", "/api/exhibitions/:id"},
		{"/api/articles", "/api/articles"},
		{"/api/articles?page=2", "/api/articles"},
		{"/api/articles/123?foo=bar", "/api/articles/:id"},
		{"/healthz", "/healthz"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := pathutil.NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
