package artist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artist"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP returns all artists ordered by name. The artist roster is small,
// so the list is not paginated.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(artists))
	for _, a := range artists {
		dtos = append(dtos, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artists/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artist ID.")
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeArtistError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}

type createRequest struct {
	Name        string  `json:"name"`
	Bio         string  `json:"bio"`
	Nationality string  `json:"nationality"`
	ImageURL    *string `json:"imageUrl"`
}

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new artist. Requires the admin role.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respond.Message(w, http.StatusBadRequest, "Name is required.")
		return
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Name:        req.Name,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/artists/%d", a.ID))
	respond.JSON(w, http.StatusCreated, toDTO(a))
}

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP replaces every mutable field of an existing artist. Requires the
// admin role.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artists/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artist ID.")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respond.Message(w, http.StatusBadRequest, "Name is required.")
		return
	}

	a, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeArtistError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an artist. The artist's artworks are removed with it by
// the database cascade. Requires the admin role.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/artists/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid artist ID.")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeArtistError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeArtistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, artUC.ErrInvalidArtistID):
		respond.Message(w, http.StatusBadRequest, "Invalid artist ID.")
	case errors.Is(err, artUC.ErrArtistNotFound):
		respond.Message(w, http.StatusNotFound, "Artist not found.")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register registers all artist HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("GET    /api/artists", ListHandler{Svc: svc})
	mux.Handle("GET    /api/artists/", GetHandler{Svc: svc})

	mux.Handle("POST   /api/artists", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/artists/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/artists/", DeleteHandler{Svc: svc})
}
