package model

import "testing"

func TestParseFloatField(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		fallback      float64
		want          float64
		wantDefaulted bool
	}{
		{"clean value", "4.5", 0, 4.5, false},
		{"clean integer", "4", 0, 4.0, false},
		{"padded value", " 3.8 ", 0, 3.8, false},
		{"zero is clean", "0", 0, 0, false},
		{"empty defaults", "", 0, 0, true},
		{"whitespace defaults", "   ", 0, 0, true},
		{"garbage defaults", "n/a", 0, 0, true},
		{"garbage keeps fallback", "??", 7.5, 7.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFloatField(tt.raw, tt.fallback)
			if got.Value != tt.want {
				t.Errorf("Value = %v, want %v", got.Value, tt.want)
			}
			if got.Defaulted != tt.wantDefaulted {
				t.Errorf("Defaulted = %v, want %v", got.Defaulted, tt.wantDefaulted)
			}
			if got.Defaulted && got.Reason == "" {
				t.Error("defaulted parse should carry a reason")
			}
		})
	}
}

func TestHasCriterion(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"banh mi", true},
		{"", false},
		{"   ", false},
		{"none", false},
		{"None", false},
		{"NONE", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		if got := HasCriterion(tt.in); got != tt.want {
			t.Errorf("HasCriterion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
