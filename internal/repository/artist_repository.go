package repository

import (
	"context"

	"fineart/internal/domain/entity"
)

type ArtistRepository interface {
	// Get retrieves an artist by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Artist, error)
	// List returns all artists ordered by name.
	List(ctx context.Context) ([]*entity.Artist, error)
	// Exists reports whether an artist row exists, used to validate the
	// artwork foreign key before a write.
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, artist *entity.Artist) error
	Update(ctx context.Context, artist *entity.Artist) error
	// Delete removes the artist; the store cascades to its artworks.
	Delete(ctx context.Context, id int64) (bool, error)
}
