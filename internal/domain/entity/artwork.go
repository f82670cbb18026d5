package entity

import (
	"fmt"
	"strings"
	"time"
)

// ArtworkStatus is the sales state of an artwork. It is a closed set: any
// value outside the three named states is invalid and must be rejected at the
// boundary where it appears.
type ArtworkStatus int

const (
	StatusForSale ArtworkStatus = iota
	StatusSold
	StatusRentable
)

// artworkStatusNames is the canonical string mapping used at the storage and
// API boundaries.
var artworkStatusNames = map[ArtworkStatus]string{
	StatusForSale:  "ForSale",
	StatusSold:     "Sold",
	StatusRentable: "Rentable",
}

// String returns the canonical name for the status, or "ForSale" for an
// out-of-range value so that a zero Artwork marshals sensibly.
func (s ArtworkStatus) String() string {
	if name, ok := artworkStatusNames[s]; ok {
		return name
	}
	return artworkStatusNames[StatusForSale]
}

// ParseArtworkStatus parses a status name case-insensitively.
//
// Callers decide how to treat a failure: write paths and row deserialization
// must reject it (a stored value that does not parse is a data-integrity
// error), while query filters silently skip the filter instead.
func ParseArtworkStatus(s string) (ArtworkStatus, error) {
	for status, name := range artworkStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusForSale, fmt.Errorf("unknown artwork status %q", s)
}

// Artwork represents a piece offered by the gallery. ArtistID must reference
// an existing Artist; the reference is validated on the write path and
// enforced by the store's foreign key.
type Artwork struct {
	ID        int64
	Title     string
	Price     int64 // non-negative
	ImageURL  string
	Status    ArtworkStatus
	ArtistID  int64
	CreatedAt time.Time
}
