// Package entity defines the core domain entities and validation logic for the
// gallery platform. It contains the fundamental business objects such as
// Article, Artwork, Artist and Exhibition, along with their validation rules
// and domain-specific errors.
package entity

import "time"

// Article represents an editorial article published on the gallery site.
// Views is a monotonically increasing counter: it starts at zero and is only
// ever incremented through the single-article read path.
type Article struct {
	ID           int64
	Title        string
	Content      string
	ImageURL     string
	ThumbnailURL string
	Writer       string
	Category     string // normalized to lowercase, may be empty
	Views        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
