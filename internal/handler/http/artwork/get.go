package artwork

import (
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artwork"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP serves the single-artwork read with the artist name joined.
// Unlike articles, reading an artwork has no side effect.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artworks/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artwork ID.")
		return
	}

	art, artistName, err := h.Svc.Get(r.Context(), id)
	if err != nil {
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

	respond.JSON(w, http.StatusOK, toDTO(art, artistName))
}
