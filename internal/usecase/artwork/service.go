package artwork

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// Service provides artwork management use cases. Reads join the artist name;
// writes validate the artist reference against the artist repository before
// persisting.
type Service struct {
	Repo    repository.ArtworkRepository
	Artists repository.ArtistRepository
	Now     func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// ListInput carries the raw artwork list parameters from the API layer.
type ListInput struct {
	Keyword  string
	PriceMin *int64
	PriceMax *int64
	Status   string
	Sort     string
	Page     pagination.Params
}

// PagedArtworks is one page of a filtered artwork query, artist names joined,
// plus the pre-window total.
type PagedArtworks struct {
	Items []repository.ArtworkWithArtist
	Total int64
	Page  pagination.Params
}

// List runs the filtered, sorted, paginated artwork query. Price bounds are
// inclusive and independently optional. A status value that does not parse is
// skipped, not rejected: the read path is deliberately lenient where the
// write path is strict.
func (s *Service) List(ctx context.Context, in ListInput) (*PagedArtworks, error) {
	params := in.Page.Normalize()
	filter := repository.ArtworkFilter{
		Keyword:  strings.TrimSpace(in.Keyword),
		PriceMin: in.PriceMin,
		PriceMax: in.PriceMax,
	}
	if in.Status != "" {
		if status, err := entity.ParseArtworkStatus(in.Status); err == nil {
			filter.Status = &status
		}
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count artworks: %w", err)
	}

	items, err := s.Repo.QueryWithArtist(ctx, filter, resolveSort(in.Sort),
		pagination.Offset(params.Page, params.Size), params.Size)
	if err != nil {
		return nil, fmt.Errorf("query artworks: %w", err)
	}

	return &PagedArtworks{Items: items, Total: total, Page: params}, nil
}

// resolveSort maps the wire sort key to a repository ordering. Unknown keys
// fall back to the documented default (ID descending).
func resolveSort(sort string) repository.ArtworkSort {
	switch sort {
	case "created":
		return repository.ArtworkSortCreated
	case "-price":
		return repository.ArtworkSortPriceDesc
	case "+price":
		return repository.ArtworkSortPriceAsc
	default:
		return repository.ArtworkSortDefault
	}
}

// Get retrieves a single artwork with its artist name. Unlike articles, the
// single-artwork read has no side effect.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Artwork, string, error) {
	if id <= 0 {
		return nil, "", ErrInvalidArtworkID
	}

	art, artistName, err := s.Repo.GetWithArtist(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get artwork: %w", err)
	}
	if art == nil {
		return nil, "", ErrArtworkNotFound
	}
	return art, artistName, nil
}

// CreateInput represents the input parameters for creating a new artwork.
// An empty Status defaults to ForSale; a non-empty one must parse.
type CreateInput struct {
	Title    string
	Price    int64
	ImageURL *string
	Status   string
	ArtistID int64
}

// Create persists a new artwork after validating that the referenced artist
// exists. Returns ErrArtistNotFound for a dangling reference and a
// ValidationError for an unparseable status.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Artwork, error) {
	status := entity.StatusForSale
	if in.Status != "" {
		parsed, err := entity.ParseArtworkStatus(in.Status)
		if err != nil {
			return nil, &entity.ValidationError{Field: "Status", Message: "is not valid."}
		}
		status = parsed
	}

	if err := s.requireArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	art := &entity.Artwork{
		Title:     entity.NormalizeText(in.Title),
		Price:     in.Price,
		ImageURL:  entity.NormalizeOptional(in.ImageURL),
		Status:    status,
		ArtistID:  in.ArtistID,
		CreatedAt: s.now(),
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}
	return art, nil
}

// UpdateInput carries the full replacement field set for an artwork update.
type UpdateInput struct {
	ID       int64
	Title    string
	Price    int64
	ImageURL *string
	Status   string
	ArtistID int64
}

// Update overwrites every mutable field of an existing artwork. The status
// must parse (the write path is strict) and the artist reference must exist.
// Returns ErrArtworkNotFound if the artwork does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Artwork, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArtworkID
	}

	status, err := entity.ParseArtworkStatus(in.Status)
	if err != nil {
		return nil, &entity.ValidationError{Field: "Status", Message: "is not valid."}
	}

	if err := s.requireArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	if art == nil {
		return nil, ErrArtworkNotFound
	}

	art.Title = entity.NormalizeText(in.Title)
	art.Price = in.Price
	art.ImageURL = entity.NormalizeOptional(in.ImageURL)
	art.Status = status
	art.ArtistID = in.ArtistID

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update artwork: %w", err)
	}
	return art, nil
}

// Delete removes an artwork by its ID. Returns ErrArtworkNotFound if no row
// existed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArtworkID
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	if !deleted {
		return ErrArtworkNotFound
	}
	return nil
}

func (s *Service) requireArtist(ctx context.Context, artistID int64) error {
	if artistID <= 0 {
		return ErrArtistNotFound
	}
	exists, err := s.Artists.Exists(ctx, artistID)
	if err != nil {
		return fmt.Errorf("check artist: %w", err)
	}
	if !exists {
		return ErrArtistNotFound
	}
	return nil
}
