package article

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

type createRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ImageURL     *string `json:"imageUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Writer       string  `json:"writer"`
	Category     string  `json:"category"`
}

// requireFields reports the first missing required field, checked in a fixed
// order so the error message is deterministic.
func (req createRequest) requireFields() string {
	checks := []struct {
		name  string
		value string
	}{
		{"Title", req.Title},
		{"Content", req.Content},
		{"Writer", req.Writer},
		{"Category", req.Category},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return c.name
		}
	}
	return ""
}

// ServeHTTP creates a new article. Requires the admin role (enforced by the
// auth middleware). Responds 201 with the stored representation and a
// Location header.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if missing := req.requireFields(); missing != "" {
		respond.Message(w, http.StatusBadRequest, missing+" is required.")
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:        req.Title,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Writer:       req.Writer,
		Category:     req.Category,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/articles/%d", art.ID))
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
