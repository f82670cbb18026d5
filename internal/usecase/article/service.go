package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fineart/internal/common/pagination"
	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// Service provides article management use cases. It handles filter
// normalization, sort resolution and timestamp maintenance, and delegates
// persistence to the repository.
//
// Now is the injected time source for CreatedAt/UpdatedAt stamping; it
// defaults to time.Now in UTC when nil.
type Service struct {
	Repo repository.ArticleRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// ListInput carries the raw list parameters as they arrive from the API
// layer. Filters may be blank; Sort may be unknown; Page/Size may be out of
// range. The service normalizes all of them.
type ListInput struct {
	Category string
	Keyword  string
	Sort     string
	Page     pagination.Params
}

// PagedArticles is one page of a filtered article query plus the total match
// count computed before the window was applied.
type PagedArticles struct {
	Items []*entity.Article
	Total int64
	Page  pagination.Params
}

// List runs the filtered, sorted, paginated article query. The total is
// counted on the filtered set independent of the page window, so that
// concatenating all pages under a fixed sort reproduces the filtered set
// exactly once.
func (s *Service) List(ctx context.Context, in ListInput) (*PagedArticles, error) {
	params := in.Page.Normalize()
	filter := repository.ArticleFilter{
		Category: entity.NormalizeCategory(in.Category),
		Keyword:  strings.TrimSpace(in.Keyword),
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	items, err := s.Repo.Query(ctx, filter, resolveSort(in.Sort),
		pagination.Offset(params.Page, params.Size), params.Size)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	return &PagedArticles{Items: items, Total: total, Page: params}, nil
}

// resolveSort maps the wire sort key to a repository ordering. Unknown keys
// fall back to the documented default (newest first).
func resolveSort(sort string) repository.ArticleSort {
	switch sort {
	case "oldest":
		return repository.ArticleSortOldest
	case "-views":
		return repository.ArticleSortMostViewed
	case "+views":
		return repository.ArticleSortLeastViewed
	default:
		return repository.ArticleSortNewest
	}
}

// CreateInput represents the input parameters for creating a new article.
// Presence validation (non-empty title, content, writer, category) is the API
// layer's job; the service still normalizes every field before storage.
type CreateInput struct {
	Title        string
	Content      string
	ImageURL     *string
	ThumbnailURL *string
	Writer       string
	Category     string
}

// Create persists a new article. All string fields are trimmed, optional
// fields normalize to the empty string, the category is lowercased, and
// CreatedAt = UpdatedAt = the injected current time. Views starts at zero.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	now := s.now()
	art := &entity.Article{
		Title:        entity.NormalizeText(in.Title),
		Content:      entity.NormalizeText(in.Content),
		ImageURL:     entity.NormalizeOptional(in.ImageURL),
		ThumbnailURL: entity.NormalizeOptional(in.ThumbnailURL),
		Writer:       entity.NormalizeText(in.Writer),
		Category:     entity.NormalizeCategory(in.Category),
		Views:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// UpdateInput carries the full replacement field set for an update. Every
// mutable field must be supplied even if unchanged; this is an overwrite,
// not a patch.
type UpdateInput struct {
	ID           int64
	Title        string
	Content      string
	ImageURL     *string
	ThumbnailURL *string
	Writer       string
	Category     string
}

// Update overwrites every mutable field of an existing article with the
// normalized input and refreshes UpdatedAt. Returns ErrArticleNotFound if the
// article does not exist; Views and CreatedAt are never touched.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	art.Title = entity.NormalizeText(in.Title)
	art.Content = entity.NormalizeText(in.Content)
	art.ImageURL = entity.NormalizeOptional(in.ImageURL)
	art.ThumbnailURL = entity.NormalizeOptional(in.ThumbnailURL)
	art.Writer = entity.NormalizeText(in.Writer)
	art.Category = entity.NormalizeCategory(in.Category)
	art.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID. Returns ErrArticleNotFound if no row
// existed; a second delete on the same ID therefore reports not-found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}

// IncrementViews increments the view counter by exactly 1 and returns the
// updated article. This backs the single-article GET, which deliberately
// combines the read with a write side effect; the increment happens in one
// repository round trip so the new value is based on the value read within
// the same operation. Concurrent increments may still under-count if the
// store does not serialize per-row writes.
func (s *Service) IncrementViews(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("increment article views: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}
