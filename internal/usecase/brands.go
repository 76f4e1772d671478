package usecase

import (
	"regexp"
	"strings"
)

// brandEntry pairs a literal as it appears in vendor titles with its
// canonical catalog form.
type brandEntry struct {
	literal   string
	canonical string
	pattern   *regexp.Regexp
}

// knownBrands is scanned in order, longer and more specific names before
// short abbreviations, so "Channel Islands" wins over a coincidental "ci"
// elsewhere in the title. Word-boundary matching keeps "Lost" from matching
// inside tokens like "LostWhale".
var knownBrands = compileBrands([]brandEntry{
	{literal: "channel islands", canonical: "channel islands"},
	{literal: "js industries", canonical: "js industries"},
	{literal: "slater designs", canonical: "slater designs"},
	{literal: "haydenshapes", canonical: "haydenshapes"},
	{literal: "sharp eye", canonical: "sharp eye"},
	{literal: "sharpeye", canonical: "sharp eye"},
	{literal: "catch surf", canonical: "catch surf"},
	{literal: "firewire", canonical: "firewire"},
	{literal: "pyzel", canonical: "pyzel"},
	{literal: "chemistry", canonical: "chemistry"},
	{literal: "album", canonical: "album"},
	{literal: "rusty", canonical: "rusty"},
	{literal: "torq", canonical: "torq"},
	{literal: "dhd", canonical: "dhd"},
	{literal: "lost", canonical: "lost"},
	{literal: "ci", canonical: "channel islands"},
	{literal: "js", canonical: "js industries"},
	{literal: "hs", canonical: "haydenshapes"},
	{literal: "sg", canonical: "sg"},
})

func compileBrands(entries []brandEntry) []brandEntry {
	for i := range entries {
		entries[i].pattern = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entries[i].literal) + `\b`)
	}
	return entries
}

// ExtractBrand scans a title for the first known brand, anywhere in the
// string, and returns its canonical lowercase form. Returns "" when no known
// brand is present.
func ExtractBrand(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	for _, entry := range knownBrands {
		if entry.pattern.MatchString(title) {
			return entry.canonical
		}
	}
	return ""
}

// stripKnownBrands removes every known brand literal from the text,
// regardless of which one (if any) was extracted as the title's brand. This
// handles titles carrying a brand the caller did not supply, or sub-brand
// mentions alongside the main brand.
func stripKnownBrands(text string) string {
	for _, entry := range knownBrands {
		text = entry.pattern.ReplaceAllString(text, " ")
	}
	return text
}
