// Package repository defines the persistence interfaces the services depend
// on. Each entity gets one interface exposing lookup, filtered/sorted/windowed
// query, count, and single-row mutations; the services never see a concrete
// storage technology.
package repository

import (
	"context"

	"fineart/internal/domain/entity"
)

// ArticleFilter contains the optional filters for article list queries.
// Fields are pre-normalized by the caller (trimmed, category lowercased);
// zero values impose no constraint. Filters compose conjunctively.
type ArticleFilter struct {
	Category string // exact match against the normalized category
	Keyword  string // case-insensitive substring over title, content, writer
}

// ArticleSort enumerates the supported article orderings. Every ordering
// carries a deterministic tie-break so pagination is stable across calls.
type ArticleSort int

const (
	// ArticleSortNewest is the default: CreatedAt desc, ID desc.
	ArticleSortNewest ArticleSort = iota
	// ArticleSortOldest orders CreatedAt asc, ID asc.
	ArticleSortOldest
	// ArticleSortMostViewed orders Views desc, CreatedAt desc.
	ArticleSortMostViewed
	// ArticleSortLeastViewed orders Views asc, CreatedAt desc.
	ArticleSortLeastViewed
)

type ArticleRepository interface {
	// Get retrieves an article by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Query returns one window of the filtered, sorted collection.
	Query(ctx context.Context, filter ArticleFilter, sort ArticleSort, offset, limit int) ([]*entity.Article, error)
	// Count returns the filtered match count, independent of any window.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// Create persists a new article and assigns its ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update overwrites every mutable column of an existing row.
	// Returns entity.ErrNotFound if no row was affected.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the row. The bool reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// IncrementViews adds exactly 1 to the view counter in a single round trip
	// and returns the updated article. Returns (nil, nil) if not found.
	IncrementViews(ctx context.Context, id int64) (*entity.Article, error)
}
