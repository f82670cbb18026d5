package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP replaces every mutable field of an existing article. This is a
// full overwrite, not a patch: omitted fields are stored as empty strings.
// Requires the admin role.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid article ID.")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if missing := req.requireFields(); missing != "" {
		respond.Message(w, http.StatusBadRequest, missing+" is required.")
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:           id,
		Title:        req.Title,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Writer:       req.Writer,
		Category:     req.Category,
	})
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

	respond.JSON(w, http.StatusOK, toDTO(art))
}
