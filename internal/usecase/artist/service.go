// Package artist provides use cases for managing artist entities.
package artist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// Sentinel errors for artist use case operations.
var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrInvalidArtistID = errors.New("invalid artist ID")
)

// Service provides artist management use cases.
type Service struct {
	Repo repository.ArtistRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// List returns all artists ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Artist, error) {
	artists, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

// Get retrieves a single artist by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Artist, error) {
	if id <= 0 {
		return nil, ErrInvalidArtistID
	}
	artist, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}
	return artist, nil
}

// CreateInput represents the input parameters for creating a new artist.
type CreateInput struct {
	Name        string
	Bio         string
	Nationality string
	ImageURL    *string
}

// Create persists a new artist with fields trimmed and CreatedAt stamped.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Artist, error) {
	artist := &entity.Artist{
		Name:        entity.NormalizeText(in.Name),
		Bio:         entity.NormalizeText(in.Bio),
		Nationality: entity.NormalizeText(in.Nationality),
		ImageURL:    entity.NormalizeOptional(in.ImageURL),
		CreatedAt:   s.now(),
	}
	if err := s.Repo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return artist, nil
}

// UpdateInput carries the full replacement field set for an artist update.
type UpdateInput struct {
	ID          int64
	Name        string
	Bio         string
	Nationality string
	ImageURL    *string
}

// Update overwrites every mutable field of an existing artist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Artist, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArtistID
	}

	artist, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	artist.Name = entity.NormalizeText(in.Name)
	artist.Bio = entity.NormalizeText(in.Bio)
	artist.Nationality = entity.NormalizeText(in.Nationality)
	artist.ImageURL = entity.NormalizeOptional(in.ImageURL)

	if err := s.Repo.Update(ctx, artist); err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}
	return artist, nil
}

// Delete removes an artist; the store cascades the delete to the artist's
// artworks. Returns ErrArtistNotFound if no row existed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArtistID
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if !deleted {
		return ErrArtistNotFound
	}
	return nil
}
