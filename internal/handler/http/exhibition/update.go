package exhibition

import (
	"encoding/json"
	"net/http"
	"strings"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	exUC "fineart/internal/usecase/exhibition"
)

type UpdateHandler struct{ Svc *exUC.Service }

// ServeHTTP replaces every mutable field of an existing exhibition. The
// category must parse on this path. Requires the admin role.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/exhibitions/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid exhibition ID.")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respond.Message(w, http.StatusBadRequest, "Title is required.")
		return
	}
	start, end, err := req.parseDates()
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	ex, err := h.Svc.Update(r.Context(), exUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Artist:      req.Artist,
		StartDate:   start,
		EndDate:     end,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Category:    req.Category,
	})
	if err != nil {
		writeExhibitionError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(ex))
}
