// Package exhibition provides use cases for managing exhibition entities,
// sharing the same list-query pattern as articles and artworks.
package exhibition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// Sentinel errors for exhibition use case operations.
var (
	ErrExhibitionNotFound  = errors.New("exhibition not found")
	ErrInvalidExhibitionID = errors.New("invalid exhibition ID")
)

// Service provides exhibition management use cases.
type Service struct {
	Repo repository.ExhibitionRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// ListInput carries the raw exhibition list parameters from the API layer.
type ListInput struct {
	Keyword  string
	Category string
	Sort     string
	Page     pagination.Params
}

// PagedExhibitions is one page of a filtered exhibition query plus the
// pre-window total.
type PagedExhibitions struct {
	Items []*entity.Exhibition
	Total int64
	Page  pagination.Params
}

// List runs the filtered, sorted, paginated exhibition query. An unparseable
// category filter is skipped, matching the lenient read-path convention.
func (s *Service) List(ctx context.Context, in ListInput) (*PagedExhibitions, error) {
	params := in.Page.Normalize()
	filter := repository.ExhibitionFilter{
		Keyword: strings.TrimSpace(in.Keyword),
	}
	if in.Category != "" {
		if category, err := entity.ParseExhibitionCategory(in.Category); err == nil {
			filter.Category = &category
		}
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count exhibitions: %w", err)
	}

	sort := repository.ExhibitionSortNewest
	if in.Sort == "oldest" {
		sort = repository.ExhibitionSortOldest
	}

	items, err := s.Repo.Query(ctx, filter, sort,
		pagination.Offset(params.Page, params.Size), params.Size)
	if err != nil {
		return nil, fmt.Errorf("query exhibitions: %w", err)
	}

	return &PagedExhibitions{Items: items, Total: total, Page: params}, nil
}

// Get retrieves a single exhibition by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Exhibition, error) {
	if id <= 0 {
		return nil, ErrInvalidExhibitionID
	}
	ex, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exhibition: %w", err)
	}
	if ex == nil {
		return nil, ErrExhibitionNotFound
	}
	return ex, nil
}

// CreateInput represents the input parameters for creating a new exhibition.
// An empty Category defaults to Group; a non-empty one must parse.
type CreateInput struct {
	Title       string
	Description string
	Artist      string
	StartDate   time.Time
	EndDate     time.Time
	ImageURL    *string
	Location    string
	Category    string
}

// Create persists a new exhibition with fields trimmed and CreatedAt stamped.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Exhibition, error) {
	category := entity.CategoryGroup
	if in.Category != "" {
		parsed, err := entity.ParseExhibitionCategory(in.Category)
		if err != nil {
			return nil, &entity.ValidationError{Field: "Category", Message: "is not valid."}
		}
		category = parsed
	}

	ex := &entity.Exhibition{
		Title:       entity.NormalizeText(in.Title),
		Description: entity.NormalizeText(in.Description),
		Artist:      entity.NormalizeText(in.Artist),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		ImageURL:    entity.NormalizeOptional(in.ImageURL),
		Location:    entity.NormalizeText(in.Location),
		Category:    category,
		CreatedAt:   s.now(),
	}
	if err := s.Repo.Create(ctx, ex); err != nil {
		return nil, fmt.Errorf("create exhibition: %w", err)
	}
	return ex, nil
}

// UpdateInput carries the full replacement field set for an exhibition update.
type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	Artist      string
	StartDate   time.Time
	EndDate     time.Time
	ImageURL    *string
	Location    string
	Category    string
}

// Update overwrites every mutable field of an existing exhibition. The
// category must parse on this path.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Exhibition, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidExhibitionID
	}

	category, err := entity.ParseExhibitionCategory(in.Category)
	if err != nil {
		return nil, &entity.ValidationError{Field: "Category", Message: "is not valid."}
	}

	ex, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get exhibition: %w", err)
	}
	if ex == nil {
		return nil, ErrExhibitionNotFound
	}

	ex.Title = entity.NormalizeText(in.Title)
	ex.Description = entity.NormalizeText(in.Description)
	ex.Artist = entity.NormalizeText(in.Artist)
	ex.StartDate = in.StartDate
	ex.EndDate = in.EndDate
	ex.ImageURL = entity.NormalizeOptional(in.ImageURL)
	ex.Location = entity.NormalizeText(in.Location)
	ex.Category = category

	if err := s.Repo.Update(ctx, ex); err != nil {
		return nil, fmt.Errorf("update exhibition: %w", err)
	}
	return ex, nil
}

// Delete removes an exhibition. Returns ErrExhibitionNotFound if no row
// existed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidExhibitionID
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete exhibition: %w", err)
	}
	if !deleted {
		return ErrExhibitionNotFound
	}
	return nil
}
