package exhibition

import (
	"log/slog"
	"net/http"

	exUC "fineart/internal/usecase/exhibition"
)

// Register registers all exhibition HTTP handlers with the given mux.
// Reads are public; mutations require the admin role via the auth middleware.
func Register(mux *http.ServeMux, svc *exUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /api/exhibitions", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /api/exhibitions/", GetHandler{Svc: svc})

	mux.Handle("POST   /api/exhibitions", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/exhibitions/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/exhibitions/", DeleteHandler{Svc: svc})
}
