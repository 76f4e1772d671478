package usecase

import (
	"math"
	"strings"
	"testing"
)

func TestNormalizeDimensions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64 // -1 means expect nil
	}{
		{"feet prime", "5'8", 68},
		{"feet prime with inch mark", `5'8"`, 68},
		{"feet prime with fraction", `5'8 1/2`, 68.5},
		{"bare feet", "5'", 60},
		{"three part block", `5'8" x 20 1/4 x 2 1/2`, 68},
		{"three part uppercase separator", `5'10 X 19 1/8 X 2 3/8"`, 70},
		{"two part block", "6'2 x 19 1/4", 74},
		{"spelled out feet and inches", "5ft 8in", 68},
		{"spelled out feet only", "9 ft", 108},
		{"dash notation", "5-10", 70},
		{"dash notation embedded", "Monsta Box 5-10 Squash", 70},
		{"embedded in full title", "Firewire Seaside 5'8 x 20 1/4 x 2 1/2 - Helium", 68},
		{"empty string", "", -1},
		{"whitespace only", "   ", -1},
		{"no dimensions", "abc", -1},
		{"number without units", "42", -1},
		{"dash outside board range", "2-50", -1},
		{"dash with implausible inches", "5-45", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDimensions(tt.input)
			if tt.want < 0 {
				if got != nil {
					t.Errorf("NormalizeDimensions(%q) = %+v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NormalizeDimensions(%q) = nil, want %v inches", tt.input, tt.want)
			}
			if math.Abs(got.LengthInches-tt.want) > 1e-9 {
				t.Errorf("NormalizeDimensions(%q).LengthInches = %v, want %v", tt.input, got.LengthInches, tt.want)
			}
		})
	}

	t.Run("captures the original substring", func(t *testing.T) {
		got := NormalizeDimensions("Firewire Seaside 5'8 Surfboard")
		if got == nil {
			t.Fatal("expected a dimension match")
		}
		if got.Original != "5'8" {
			t.Errorf("Original = %q, want %q", got.Original, "5'8")
		}
	})
}

func TestStripDimensions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // substring that must be gone
		keep  string // substring that must survive
	}{
		{"strips three part block", "Seaside 5'8 x 20 1/4 x 2 1/2 Helium", "20 1/4", "Seaside"},
		{"strips feet prime", `Ghost 6'1"`, "6'1", "Ghost"},
		{"strips plausible dash sizes", "Monsta Box 5-10", "5-10", "Monsta Box"},
		{"keeps implausible dash numbers", "Driver 2-50", "", "2-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripDimensions(tt.input)
			if tt.want != "" && strings.Contains(got, tt.want) {
				t.Errorf("StripDimensions(%q) = %q, still contains %q", tt.input, got, tt.want)
			}
			if tt.keep != "" && !strings.Contains(got, tt.keep) {
				t.Errorf("StripDimensions(%q) = %q, lost %q", tt.input, got, tt.keep)
			}
		})
	}
}

func TestParseInchValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"8", 8},
		{"8.5", 8.5},
		{"8 1/2", 8.5},
		{"20 13/16", 20.8125},
		{"1/4", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseInchValue(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("parseInchValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
