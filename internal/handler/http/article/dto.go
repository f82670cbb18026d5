// Package article provides HTTP handlers for article endpoints: the paginated
// list, the view-incrementing single read, and the admin-gated mutations.
package article

import (
	"time"

	"fineart/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Writer       string    `json:"writer"`
	Category     string    `json:"category"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// listItemDTO is the projection for list responses. Content is served only
// on the single read.
type listItemDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Writer       string    `json:"writer"`
	Category     string    `json:"category"`
	Views        int64     `json:"views"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toListItemDTO(art *entity.Article) listItemDTO {
	return listItemDTO{
		ID:           art.ID,
		Title:        art.Title,
		Writer:       art.Writer,
		Category:     art.Category,
		Views:        art.Views,
		ImageURL:     art.ImageURL,
		ThumbnailURL: art.ThumbnailURL,
		CreatedAt:    art.CreatedAt,
		UpdatedAt:    art.UpdatedAt,
	}
}

func toDTO(art *entity.Article) DTO {
	return DTO{
		ID:           art.ID,
		Title:        art.Title,
		Content:      art.Content,
		ImageURL:     art.ImageURL,
		ThumbnailURL: art.ThumbnailURL,
		Writer:       art.Writer,
		Category:     art.Category,
		Views:        art.Views,
		CreatedAt:    art.CreatedAt,
		UpdatedAt:    art.UpdatedAt,
	}
}
