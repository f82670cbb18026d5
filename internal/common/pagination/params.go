// Package pagination provides the shared page/size arithmetic used by every
// list endpoint. Parameters are coerced rather than rejected: a page below 1
// becomes 1 and a size below 1 becomes the default page size.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPage is the page used when none (or an invalid one) is supplied.
	DefaultPage = 1
	// DefaultSize is the page size used when none (or an invalid one) is supplied.
	DefaultSize = 10
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page int // 1-based page number
	Size int // Items per page
}

// Normalize applies the coercion rules: page < 1 becomes DefaultPage and
// size < 1 becomes DefaultSize. No upper bound is enforced; callers may
// request arbitrarily large pages.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	return p
}

// ParseQueryParams parses "page" and "size" from the request query string.
// Missing or unparseable values fall back to the defaults; out-of-range
// values are coerced by Normalize. Parsing never fails.
func ParseQueryParams(r *http.Request) Params {
	params := Params{Page: DefaultPage, Size: DefaultSize}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			params.Page = page
		}
	}
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			params.Size = size
		}
	}

	return params.Normalize()
}
