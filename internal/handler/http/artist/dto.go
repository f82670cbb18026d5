// Package artist provides HTTP handlers for artist endpoints.
package artist

import (
	"time"

	"fineart/internal/domain/entity"
)

// DTO represents the JSON structure for artist data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Nationality string    `json:"nationality"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDTO(a *entity.Artist) DTO {
	return DTO{
		ID:          a.ID,
		Name:        a.Name,
		Bio:         a.Bio,
		Nationality: a.Nationality,
		ImageURL:    a.ImageURL,
		CreatedAt:   a.CreatedAt,
	}
}
