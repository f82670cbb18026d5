package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/\d+$`), Template: "/api/articles/:id"},
	{Pattern: regexp.MustCompile(`^/api/artworks/\d+$`), Template: "/api/artworks/:id"},
	{Pattern: regexp.MustCompile(`^/api/artists/\d+$`), Template: "/api/artists/:id"},
	{Pattern: regexp.MustCompile(`^/api/exhibitions/\d+$`), Template: "/api/exhibitions/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts paths with IDs (e.g., /api/articles/123)
// to template format (e.g., /api/articles/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/123")   // "/api/articles/:id"
//	NormalizePath("/api/articles")       // "/api/articles" (unchanged)
//	NormalizePath("/healthz")            // "/healthz" (unchanged)
//	NormalizePath("/api/articles/123/")  // "/api/articles/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
