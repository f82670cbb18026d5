package exhibition

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fineart/internal/domain/entity"
	"fineart/internal/handler/http/respond"
	exUC "fineart/internal/usecase/exhibition"
)

type CreateHandler struct{ Svc *exUC.Service }

type createRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Artist      string  `json:"artist"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	ImageURL    *string `json:"imageUrl"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
}

// parseDates validates the date pair. Both dates are required and must be
// RFC3339; the end date must not precede the start date.
func (req createRequest) parseDates() (start, end time.Time, err error) {
	if strings.TrimSpace(req.StartDate) == "" {
		return start, end, errors.New("StartDate is required.")
	}
	if strings.TrimSpace(req.EndDate) == "" {
		return start, end, errors.New("EndDate is required.")
	}
	start, err = time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return start, end, errors.New("StartDate must be in RFC3339 format.")
	}
	end, err = time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return start, end, errors.New("EndDate must be in RFC3339 format.")
	}
	if end.Before(start) {
		return start, end, errors.New("EndDate must not be before StartDate.")
	}
	return start, end, nil
}

// ServeHTTP creates a new exhibition. An omitted category defaults to Group;
// a non-empty one must parse. Requires the admin role.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	ex, err := h.Svc.Create(r.Context(), exUC.CreateInput{
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

	w.Header().Set("Location", fmt.Sprintf("/api/exhibitions/%d", ex.ID))
	respond.JSON(w, http.StatusCreated, toDTO(ex))
}

// writeExhibitionError maps exhibition write errors to HTTP responses.
func writeExhibitionError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.Message(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, exUC.ErrInvalidExhibitionID):
		respond.Message(w, http.StatusBadRequest, "Invalid exhibition ID.")
	case errors.Is(err, exUC.ErrExhibitionNotFound):
		respond.Message(w, http.StatusNotFound, "Exhibition not found.")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
