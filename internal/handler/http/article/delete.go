package article

import (
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article. Deleting an already-deleted article reports
// 404. Requires the admin role.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid article ID.")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.Message(w, http.StatusBadRequest, "Invalid article ID.")
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.Message(w, http.StatusNotFound, "Article not found.")
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
