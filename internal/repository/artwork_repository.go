package repository

import (
	"context"

	"fineart/internal/domain/entity"
)

// ArtworkWithArtist pairs an artwork with its artist's display name.
type ArtworkWithArtist struct {
	Artwork    *entity.Artwork
	ArtistName string
}

// ArtworkFilter contains the optional filters for artwork list queries.
// Nil pointers impose no constraint; price bounds are inclusive.
type ArtworkFilter struct {
	Keyword  string // case-insensitive substring over title
	PriceMin *int64
	PriceMax *int64
	Status   *entity.ArtworkStatus
}

// ArtworkSort enumerates the supported artwork orderings.
type ArtworkSort int

const (
	// ArtworkSortDefault is ID desc.
	ArtworkSortDefault ArtworkSort = iota
	// ArtworkSortCreated orders CreatedAt desc, ID desc.
	ArtworkSortCreated
	// ArtworkSortPriceDesc orders Price desc, ID desc.
	ArtworkSortPriceDesc
	// ArtworkSortPriceAsc orders Price asc, ID desc.
	ArtworkSortPriceAsc
)

type ArtworkRepository interface {
	// Get retrieves an artwork by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Artwork, error)
	// GetWithArtist retrieves an artwork and its artist name.
	// Returns (nil, "", nil) if the artwork is not found.
	GetWithArtist(ctx context.Context, id int64) (*entity.Artwork, string, error)
	// QueryWithArtist returns one window of the filtered, sorted collection
	// with artist names joined in.
	QueryWithArtist(ctx context.Context, filter ArtworkFilter, sort ArtworkSort, offset, limit int) ([]ArtworkWithArtist, error)
	// Count returns the filtered match count, independent of any window.
	Count(ctx context.Context, filter ArtworkFilter) (int64, error)
	Create(ctx context.Context, artwork *entity.Artwork) error
	// Update overwrites every mutable column. Returns entity.ErrNotFound if
	// no row was affected.
	Update(ctx context.Context, artwork *entity.Artwork) error
	Delete(ctx context.Context, id int64) (bool, error)
}
