package entity

import "strings"

// NormalizeText trims leading and trailing whitespace. Every string field
// passes through this before it is stored.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeOptional maps an absent optional string to the empty string and
// trims a present one. Optional strings are stored as "", never as NULL.
func NormalizeOptional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// NormalizeCategory lowercases a trimmed article category. A blank category
// normalizes to the empty string.
func NormalizeCategory(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(trimmed)
}
