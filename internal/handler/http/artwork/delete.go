package artwork

import (
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artwork"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an artwork. Requires the admin role.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artworks/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artwork ID.")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArtworkID):
			respond.Message(w, http.StatusBadRequest, "Invalid artwork ID.")
		case errors.Is(err, artUC.ErrArtworkNotFound):
			respond.Message(w, http.StatusNotFound, "Artwork not found.")
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
