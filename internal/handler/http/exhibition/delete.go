package exhibition

import (
	"net/http"

	"fineart/internal/handler/http/pathutil"
	"fineart/internal/handler/http/respond"
	exUC "fineart/internal/usecase/exhibition"
)

type DeleteHandler struct{ Svc *exUC.Service }

// ServeHTTP deletes an exhibition. Requires the admin role.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/exhibitions/")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid exhibition ID.")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeExhibitionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
