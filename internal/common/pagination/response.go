package pagination

// Response is the generic paginated response wrapper shared by all list
// endpoints. Total always reflects the filtered, unpaginated match count.
type Response[T any] struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Items []T   `json:"items"`
}

// NewResponse creates a paginated response for one page of items.
func NewResponse[T any](items []T, total int64, params Params) Response[T] {
	return Response[T]{
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Items: items,
	}
}
