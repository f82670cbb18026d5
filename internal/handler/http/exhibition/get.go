package exhibition

import (
	"errors"
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	exUC "fineart/internal/usecase/exhibition"
)

type GetHandler struct{ Svc *exUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/exhibitions/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid exhibition ID.")
		return
	}

	ex, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, exUC.ErrInvalidExhibitionID):
			respond.Message(w, http.StatusBadRequest, "Invalid exhibition ID.")
		case errors.Is(err, exUC.ErrExhibitionNotFound):
			respond.Message(w, http.StatusNotFound, "Exhibition not found.")
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(ex))
}
