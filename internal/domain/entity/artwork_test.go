package entity_test

import (
	"testing"

	"fineart/internal/domain/entity"
)

func TestParseArtworkStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.ArtworkStatus
		wantErr bool
	}{
		{"ForSale", entity.StatusForSale, false},
		{"Sold", entity.StatusSold, false},
		{"Rentable", entity.StatusRentable, false},
		{"forsale", entity.StatusForSale, false},
		{"SOLD", entity.StatusSold, false},
		{"", entity.StatusForSale, true},
		{"Reserved", entity.StatusForSale, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := entity.ParseArtworkStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArtworkStatus(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseArtworkStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArtworkStatus_String(t *testing.T) {
	if got := entity.StatusSold.String(); got != "Sold" {
		t.Fatalf("StatusSold.String() = %q, want Sold", got)
	}
	// Out-of-range values fall back to the zero status name.
	if got := entity.ArtworkStatus(99).String(); got != "ForSale" {
		t.Fatalf("ArtworkStatus(99).String() = %q, want ForSale", got)
	}
}
