package article

import (
	"log/slog"
	"net/http"

	httpmetrics "fineart/internal/handler/http"
	artUC "fineart/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux.
// The list and single read are public; create, update, and delete require
// the admin role, enforced by the auth middleware wrapping the whole mux.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /api/articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /api/articles/", GetHandler{Svc: svc, RecordView: httpmetrics.RecordArticleView})

	mux.Handle("POST   /api/articles", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/articles/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/articles/", DeleteHandler{Svc: svc})
}
