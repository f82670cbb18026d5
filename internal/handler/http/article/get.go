package article

import (
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/article"
)

type GetHandler struct {
	Svc *artUC.Service

	// RecordView is called once per successful read. Optional.
	RecordView func()
}

// ServeHTTP serves the single-article read. Reading an article increments its
// view counter by exactly one; the returned body carries the incremented value.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid article ID.")
		return
	}

	art, err := h.Svc.IncrementViews(r.Context(), id)
	if err != nil {
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

	if h.RecordView != nil {
		h.RecordView()
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
