package upload_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fineart/internal/handler/http/upload"
)

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandler_storesFile(t *testing.T) {
	dir := t.TempDir()
	h := upload.Handler{Dir: dir, BaseURL: "/uploads"}

	body, contentType := multipartBody(t, "file", "photo.JPG", "fake image bytes")
	req := httptest.NewRequest("POST", "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.URL, "/uploads/") || !strings.HasSuffix(resp.URL, ".jpg") {
		t.Fatalf("url = %q", resp.URL)
	}
	// The original filename must not survive.
	if strings.Contains(resp.URL, "photo") {
		t.Fatalf("original filename leaked into %q", resp.URL)
	}

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(resp.URL, "/uploads/")))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(stored) != "fake image bytes" {
		t.Fatalf("stored content = %q", stored)
	}
}

func TestHandler_rejectsDisallowedExtension(t *testing.T) {
	h := upload.Handler{Dir: t.TempDir(), BaseURL: "/uploads"}

	body, contentType := multipartBody(t, "file", "payload.exe", "MZ")
	req := httptest.NewRequest("POST", "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "File type is not allowed.") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandler_requiresFileField(t *testing.T) {
	h := upload.Handler{Dir: t.TempDir(), BaseURL: "/uploads"}

	body, contentType := multipartBody(t, "document", "a.png", "x")
	req := httptest.NewRequest("POST", "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "File is required.") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
