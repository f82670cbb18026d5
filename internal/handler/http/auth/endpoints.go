package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication.
//
// - /healthz: orchestration health checks
// - /metrics: Prometheus scraping
// - /api/auth/token: token issuance (cannot require a token to get a token)
// - /uploads/: serving of previously uploaded images
var PublicEndpoints = []string{
	"/healthz",
	"/metrics",
	"/api/auth/token",
	"/uploads/",
}

// PublicReadPrefixes lists resource paths whose GET requests are public.
// Gallery content is world-readable; only mutations require a token.
var PublicReadPrefixes = []string{
	"/api/articles",
	"/api/artworks",
	"/api/artists",
	"/api/exhibitions",
}

// IsPublicEndpoint checks if a given path is accessible without authentication
// regardless of method.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching (e.g. /uploads/* )
// - Endpoints without '/' require exact match, trailing slash, or query params only
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint {
			return true
		}
		if path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}

// IsPublicRead reports whether a GET or HEAD request to the path is public.
func IsPublicRead(method, path string) bool {
	if method != "GET" && method != "HEAD" {
		return false
	}
	for _, prefix := range PublicReadPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
