// Package middleware provides HTTP middleware shared across the API surface.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// Example: ["http://localhost:3000", "https://example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// AllowCredentials must be true for JWT Bearer token authentication.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int
}

// LoadCORSConfig loads CORS configuration from environment variables.
//
// Environment Variables:
//   - CORS_ALLOWED_ORIGINS: comma-separated list of allowed origins (required)
//   - CORS_ALLOWED_METHODS: comma-separated list of allowed HTTP methods (optional)
//   - CORS_ALLOWED_HEADERS: comma-separated list of allowed request headers (optional)
//   - CORS_MAX_AGE: preflight cache duration in seconds (optional)
func LoadCORSConfig() (*CORSConfig, error) {
	origins, err := loadOrigins()
	if err != nil {
		return nil, err
	}

	cfg := &CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	if methods := os.Getenv("CORS_ALLOWED_METHODS"); methods != "" {
		cfg.AllowedMethods = splitAndTrim(methods)
	}
	if headers := os.Getenv("CORS_ALLOWED_HEADERS"); headers != "" {
		cfg.AllowedHeaders = splitAndTrim(headers)
	}
	if maxAge := os.Getenv("CORS_MAX_AGE"); maxAge != "" {
		val, err := strconv.Atoi(maxAge)
		if err != nil || val < 0 {
			return nil, fmt.Errorf("invalid CORS_MAX_AGE: %s", maxAge)
		}
		cfg.MaxAge = val
	}

	return cfg, nil
}

func loadOrigins() ([]string, error) {
	originsStr := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if originsStr == "" {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS environment variable is required")
	}

	origins := make([]string, 0)
	for _, originStr := range strings.Split(originsStr, ",") {
		originStr = strings.TrimSpace(originStr)
		if originStr == "" {
			continue
		}

		u, err := url.Parse(originStr)
		if err != nil {
			return nil, fmt.Errorf("invalid origin URL '%s': %w", originStr, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("origin must use http or https scheme: %s", originStr)
		}
		if strings.HasSuffix(originStr, "/") {
			return nil, fmt.Errorf("origin must not have trailing slash: %s", originStr)
		}

		origins = append(origins, originStr)
	}

	if len(origins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS contains no valid origins")
	}
	return origins, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// CORS returns an HTTP middleware that handles cross-origin requests.
//
// Behavior:
//   - If the Origin header is empty, skip CORS processing (same-origin request)
//   - If the origin is not allowed, log a warning and continue without CORS
//     headers; the browser blocks the response
//   - For allowed preflight OPTIONS requests, set all preflight headers and
//     return 204 without calling the next handler
//   - For allowed actual requests, set the allow headers and pass through
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.originAllowed(origin) {
				slog.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			// Echo back the request origin (required for credentials).
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
