package article

import (
	"log/slog"
	"net/http"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/handler/http/requestid"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/article"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP serves the paginated article list. Filters (category, keyword),
// sort key, and pagination parameters all come from the query string; invalid
// pagination values are coerced, never rejected.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	q := r.URL.Query()
	in := artUC.ListInput{
		Category: q.Get("category"),
		Keyword:  q.Get("keyword"),
		Sort:     q.Get("sort"),
		Page:     pagination.ParseQueryParams(r),
	}

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", in.Page.Page,
			"size", in.Page.Size,
			"request_id", reqID)
		pagination.RecordError("articles", "database")
		pagination.RecordRequest("articles", http.StatusInternalServerError)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]listItemDTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, toListItemDTO(item))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest("articles", http.StatusOK)
	pagination.RecordDuration("articles", duration.Seconds())
	pagination.UpdateTotalCount("articles", result.Total)

	logger.Info("article list",
		"page", result.Page.Page,
		"size", result.Page.Size,
		"total", result.Total,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Total, result.Page))
}
