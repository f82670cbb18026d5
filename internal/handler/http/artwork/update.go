package artwork

import (
	"encoding/json"
	"net/http"
	"strings"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artwork"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP replaces every mutable field of an existing artwork. The status
// must parse on this path and the artist reference must exist. Requires the
// admin role.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artworks/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artwork ID.")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.Price < 0 {
		respond.Message(w, http.StatusBadRequest, "Title and price must be valid.")
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Status:   req.Status,
		ArtistID: req.ArtistID,
	})
	if err != nil {
		writeArtworkError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art, ""))
}
