// Package respond provides utilities for sending HTTP responses in JSON format.
// Error bodies use the {"message": "..."} shape and are sanitized so internal
// details never leak to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so only log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes a JSON error body of the form {"message": "..."}.
// Use this for user-facing errors where the handler controls the wording.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g., database errors) are returned as a generic message,
// with details logged for debugging. Safe errors (validation errors) are
// returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"not valid",
		"already exists",
		"must be",
		"cannot be",
		"too large",
		"unauthorized",
		"forbidden",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx codes are always treated as internal.
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		Message(w, code, msg)
		return
	}

	logger := slog.Default()
	logger.Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Message(w, code, "Internal server error.")
}
