package artwork

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/handler/http/requestid"
	"fineart/internal/handler/http/respond"
	artUC "fineart/internal/usecase/artwork"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP serves the paginated artwork list. priceMin/priceMax are inclusive
// bounds; an unparseable bound or status filter is skipped rather than
// rejected, matching the lenient read-path convention.
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
		Keyword:  q.Get("keyword"),
		PriceMin: parsePrice(q.Get("priceMin")),
		PriceMax: parsePrice(q.Get("priceMax")),
		Status:   q.Get("status"),
		Sort:     q.Get("sort"),
		Page:     pagination.ParseQueryParams(r),
	}

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list artworks",
			"error", err.Error(),
			"page", in.Page.Page,
			"size", in.Page.Size,
			"request_id", reqID)
		pagination.RecordError("artworks", "database")
		pagination.RecordRequest("artworks", http.StatusInternalServerError)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, toDTO(item.Artwork, item.ArtistName))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest("artworks", http.StatusOK)
	pagination.RecordDuration("artworks", duration.Seconds())
	pagination.UpdateTotalCount("artworks", result.Total)

	logger.Info("artwork list",
		"page", result.Page.Page,
		"size", result.Page.Size,
		"total", result.Total,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Total, result.Page))
}

// parsePrice parses an optional price bound. Unparseable values are dropped.
func parsePrice(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
