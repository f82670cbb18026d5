package entity

import "time"

// Artist is a creator referenced by artworks. Deleting an artist cascades to
// its artworks; the cascade is the store's referential policy, not logic the
// services implement themselves.
type Artist struct {
	ID          int64
	Name        string
	Bio         string
	Nationality string
	ImageURL    string
	CreatedAt   time.Time
}
