// Package artwork provides HTTP handlers for artwork endpoints. Writes
// validate the artist reference; reads carry the joined artist name.
package artwork

import (
	"time"

	"fineart/internal/domain/entity"
)

// DTO represents the JSON structure for artwork data transfer. ArtistName is
// joined from the artists table on reads.
type DTO struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Price      int64     `json:"price"`
	ImageURL   string    `json:"imageUrl"`
	Status     string    `json:"status"`
	ArtistID   int64     `json:"artistId"`
	ArtistName string    `json:"artistName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toDTO(art *entity.Artwork, artistName string) DTO {
	return DTO{
		ID:         art.ID,
		Title:      art.Title,
		Price:      art.Price,
		ImageURL:   art.ImageURL,
		Status:     art.Status.String(),
		ArtistID:   art.ArtistID,
		ArtistName: artistName,
		CreatedAt:  art.CreatedAt,
	}
}
