// Package exhibition provides HTTP handlers for exhibition endpoints.
package exhibition

import (
	"time"

	"fineart/internal/domain/entity"
)

// DTO represents the JSON structure for exhibition data transfer. Artist is
// free text, not a reference to the artists table.
type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Artist      string    `json:"artist"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDTO(ex *entity.Exhibition) DTO {
	return DTO{
		ID:          ex.ID,
		Title:       ex.Title,
		Description: ex.Description,
		Artist:      ex.Artist,
		StartDate:   ex.StartDate,
		EndDate:     ex.EndDate,
		ImageURL:    ex.ImageURL,
		Location:    ex.Location,
		Category:    ex.Category.String(),
		CreatedAt:   ex.CreatedAt,
	}
}
