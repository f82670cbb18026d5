package entity

import (
	"fmt"
	"strings"
	"time"
)

// ExhibitionCategory classifies an exhibition. Like ArtworkStatus it is a
// plain label with no transition constraints.
type ExhibitionCategory int

const (
	CategoryGroup ExhibitionCategory = iota
	CategorySolo
	CategoryDigital
	CategoryInstallation
)

var exhibitionCategoryNames = map[ExhibitionCategory]string{
	CategoryGroup:        "Group",
	CategorySolo:         "Solo",
	CategoryDigital:      "Digital",
	CategoryInstallation: "Installation",
}

func (c ExhibitionCategory) String() string {
	if name, ok := exhibitionCategoryNames[c]; ok {
		return name
	}
	return exhibitionCategoryNames[CategoryGroup]
}

// ParseExhibitionCategory parses a category name case-insensitively. Same
// contract as ParseArtworkStatus: strict on write and deserialization paths,
// callers on filter paths ignore the error and skip the filter.
func ParseExhibitionCategory(s string) (ExhibitionCategory, error) {
	for category, name := range exhibitionCategoryNames {
		if strings.EqualFold(name, s) {
			return category, nil
		}
	}
	return CategoryGroup, fmt.Errorf("unknown exhibition category %q", s)
}

// Exhibition is a scheduled show. Artist is free text, not a foreign key.
type Exhibition struct {
	ID          int64
	Title       string
	Description string
	Artist      string
	StartDate   time.Time
	EndDate     time.Time
	ImageURL    string
	Location    string
	Category    ExhibitionCategory
	CreatedAt   time.Time
}
