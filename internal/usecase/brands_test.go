package usecase

import (
	"strings"
	"testing"
)

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"abbreviation resolves to canonical form", `CI Fishbeard 5'10"`, "channel islands"},
		{"full brand at start", `Firewire Seaside 5'8"`, "firewire"},
		{"brand mid-title", "Used Firewire Seaside", "firewire"},
		{"brand at end", "Seaside by Firewire", "firewire"},
		{"full name preferred over abbreviation", "Channel Islands Happy 5'11", "channel islands"},
		{"js abbreviation", `JS Monsta Box 5'10`, "js industries"},
		{"js full name", "JS Industries Monsta Box", "js industries"},
		{"case insensitive", "PYZEL ghost 6'1", "pyzel"},
		{"word boundary prevents partial match", "LostWhale 5'8", ""},
		{"lost as a standalone word", `Lost Puddle Jumper 5'6"`, "lost"},
		{"unknown brand", `Custom Surfboard 6'0"`, ""},
		{"empty title", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractBrand(tt.title); got != tt.want {
				t.Errorf("ExtractBrand(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestStripKnownBrands(t *testing.T) {
	t.Run("removes every brand mention", func(t *testing.T) {
		got := stripKnownBrands("Firewire Seaside by Slater Designs")
		for _, leaked := range []string{"Firewire", "Slater Designs"} {
			if containsFold(got, leaked) {
				t.Errorf("stripKnownBrands left %q in %q", leaked, got)
			}
		}
	})

	t.Run("keeps non-brand tokens intact", func(t *testing.T) {
		got := stripKnownBrands("Firewire Seaside")
		if !containsFold(got, "Seaside") {
			t.Errorf("stripKnownBrands lost the model token: %q", got)
		}
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
