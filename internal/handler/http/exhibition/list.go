package exhibition

import (
	"log/slog"
	"net/http"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/handler/http/requestid"
	"fineart/internal/handler/http/respond"
	exUC "fineart/internal/usecase/exhibition"
)

type ListHandler struct {
	Svc    *exUC.Service
	Logger *slog.Logger
}

// ServeHTTP serves the paginated exhibition list. The default order is by
// start date, newest first; sort=oldest reverses it.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	q := r.URL.Query()
	in := exUC.ListInput{
		Keyword:  q.Get("keyword"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Page:     pagination.ParseQueryParams(r),
	}

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list exhibitions",
			"error", err.Error(),
			"page", in.Page.Page,
			"size", in.Page.Size,
			"request_id", reqID)
		pagination.RecordError("exhibitions", "database")
		pagination.RecordRequest("exhibitions", http.StatusInternalServerError)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, toDTO(item))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest("exhibitions", http.StatusOK)
	pagination.RecordDuration("exhibitions", duration.Seconds())
	pagination.UpdateTotalCount("exhibitions", result.Total)

	logger.Info("exhibition list",
		"page", result.Page.Page,
		"size", result.Page.Size,
		"total", result.Total,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Total, result.Page))
}
