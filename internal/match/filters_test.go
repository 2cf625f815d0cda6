package match

import "testing"

func TestMatchesCuisine(t *testing.T) {
	tests := []struct {
		name    string
		cuisine string
		rest    string
		want    bool
	}{
		{"substring match", "banh mi", "Banh Mi Huynh Hoa", true},
		{"case-insensitive", "BANH MI", "banh mi 37", true},
		{"no match", "sushi", "Phở Hòa Pasteur", false},
		{"empty criterion passes", "", "Phở Hòa Pasteur", true},
		{"none sentinel passes", "none", "Phở Hòa Pasteur", true},
		{"none sentinel any case", "None", "Phở Hòa Pasteur", true},
		{"criterion with padding", "  com tam ", "Com Tam Ba Ghien", true},
		// Literal byte matching: no diacritic folding, on purpose.
		{"accented name, plain criterion", "pho", "Phở Hòa", false},
		{"accented criterion, accented name", "phở", "Phở Hòa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesCuisine(tt.cuisine, tt.rest); got != tt.want {
				t.Errorf("MatchesCuisine(%q, %q) = %v, want %v", tt.cuisine, tt.rest, got, tt.want)
			}
		})
	}
}

func TestMatchesTag(t *testing.T) {
	tests := []struct {
		name     string
		category string
		tags     string
		want     bool
	}{
		{"tag present", "street food", "casual, street food, cheap eats", true},
		{"tag case-insensitive", "Street Food", "STREET FOOD", true},
		{"tag missing", "rooftop", "casual, street food", false},
		{"empty criterion passes", "", "", true},
		{"none sentinel passes", "none", "", true},
		{"empty tags fail a set criterion", "rooftop", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesTag(tt.category, tt.tags); got != tt.want {
				t.Errorf("MatchesTag(%q, %q) = %v, want %v", tt.category, tt.tags, got, tt.want)
			}
		})
	}
}
