package artwork

import (
	"log/slog"
	"net/http"

	artUC "fineart/internal/usecase/artwork"
)

// Register registers all artwork HTTP handlers with the given mux.
// Reads are public; mutations require the admin role via the auth middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /api/artworks", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /api/artworks/", GetHandler{Svc: svc})

	mux.Handle("POST   /api/artworks", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/artworks/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/artworks/", DeleteHandler{Svc: svc})
}
