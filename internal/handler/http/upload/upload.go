// Package upload provides the admin-only image upload endpoint. Files are
// stored under a configurable directory with generated names and served back
// under /uploads/.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fineart/internal/handler/http/respond"
)

// MaxFileSize is the upload size limit.
const MaxFileSize = 10 << 20 // 10 MB

// allowedExtensions lists the accepted image file extensions (lowercased).
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Handler stores uploaded images on local disk.
type Handler struct {
	// Dir is the destination directory. Created on first use if missing.
	Dir string
	// BaseURL is the public path prefix for stored files, e.g. "/uploads".
	BaseURL string
	Logger  *slog.Logger
}

// ServeHTTP accepts a multipart form with a single "file" field. The original
// filename is discarded; only its extension survives, attached to a random
// UUID. Requires the admin role.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize)
	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Message(w, http.StatusRequestEntityTooLarge, "File is too large.")
			return
		}
		respond.Message(w, http.StatusBadRequest, "Invalid multipart request.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "File is required.")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		respond.Message(w, http.StatusBadRequest, "File type is not allowed.")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("create upload dir: %w", err))
		return
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(h.Dir, name))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("create upload file: %w", err))
		return
	}
	defer func() { _ = dst.Close() }()

	written, err := io.Copy(dst, file)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("write upload file: %w", err))
		return
	}

	logger.Info("file uploaded",
		slog.String("name", name),
		slog.Int64("size_bytes", written),
		slog.String("original", header.Filename))

	respond.JSON(w, http.StatusCreated, uploadResponse{
		URL: strings.TrimSuffix(h.BaseURL, "/") + "/" + name,
	})
}

// Register registers the upload endpoint and the static file server for
// previously uploaded images.
func Register(mux *http.ServeMux, h Handler) {
	mux.Handle("POST /api/uploads", h)
	mux.Handle("GET  /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(h.Dir))))
}
