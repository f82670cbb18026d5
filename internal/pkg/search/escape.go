// Package search provides shared helpers for keyword search queries.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds keyword search queries so an expensive LIKE
// scan cannot hold a connection indefinitely.
const DefaultSearchTimeout = 5 * time.Second

// EscapeLike escapes LIKE/ILIKE metacharacters in a user-supplied keyword so
// it matches literally. The backslash must be escaped first.
func EscapeLike(keyword string) string {
	escaped := strings.ReplaceAll(keyword, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `%`, `\%`)
	escaped = strings.ReplaceAll(escaped, `_`, `\_`)
	return escaped
}
