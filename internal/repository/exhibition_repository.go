package repository

import (
	"context"

	"fineart/internal/domain/entity"
)

// ExhibitionFilter contains the optional filters for exhibition list queries.
type ExhibitionFilter struct {
	Keyword  string // case-insensitive substring over title
	Category *entity.ExhibitionCategory
}

// ExhibitionSort enumerates the supported exhibition orderings.
type ExhibitionSort int

const (
	// ExhibitionSortNewest is the default: StartDate desc, ID desc.
	ExhibitionSortNewest ExhibitionSort = iota
	// ExhibitionSortOldest orders StartDate asc, ID asc.
	ExhibitionSortOldest
)

type ExhibitionRepository interface {
	// Get retrieves an exhibition by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Exhibition, error)
	Query(ctx context.Context, filter ExhibitionFilter, sort ExhibitionSort, offset, limit int) ([]*entity.Exhibition, error)
	Count(ctx context.Context, filter ExhibitionFilter) (int64, error)
	Create(ctx context.Context, exhibition *entity.Exhibition) error
	Update(ctx context.Context, exhibition *entity.Exhibition) error
	Delete(ctx context.Context, id int64) (bool, error)
}
