package artwork

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fineart/internal/domain/entity"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artwork"
)

type CreateHandler struct{ Svc *artUC.Service }

type createRequest struct {
	Title    string  `json:"title"`
	Price    int64   `json:"price"`
	ImageURL *string `json:"imageUrl"`
	Status   string  `json:"status"`
	ArtistID int64   `json:"artistId"`
}

// ServeHTTP creates a new artwork. Title must be non-blank, price must be
// non-negative, the referenced artist must exist and a non-empty status must
// parse; each failure reports 400. Requires the admin role.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.Price < 0 {
		respond.Message(w, http.StatusBadRequest, "Title and price must be valid.")
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
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

	w.Header().Set("Location", fmt.Sprintf("/api/artworks/%d", art.ID))
	respond.JSON(w, http.StatusCreated, toDTO(art, ""))
}

// writeArtworkError maps artwork write errors to HTTP responses.
func writeArtworkError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.Message(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, artUC.ErrArtistNotFound):
		respond.Message(w, http.StatusBadRequest, "Artist not found.")
	case errors.Is(err, artUC.ErrInvalidArtworkID):
		respond.Message(w, http.StatusBadRequest, "Invalid artwork ID.")
	case errors.Is(err, artUC.ErrArtworkNotFound):
		respond.Message(w, http.StatusNotFound, "Artwork not found.")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
