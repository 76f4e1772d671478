package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for model cleanup
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
	yearRegex            = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// colorFinishWords are paint/finish descriptors that vendors append to
// otherwise identical boards.
var colorFinishWords = []string{
	"white", "black", "blue", "red", "green", "yellow", "orange", "pink",
	"purple", "teal", "grey", "gray", "navy", "aqua", "mint", "sand",
	"charcoal", "olive", "clear", "tint", "gloss", "matte",
}

// finSystemWords are fin-system and fin-setup tokens. Multi-word entries come
// before their prefixes so "fcs ii" is removed as a unit rather than leaving
// a stray "ii" behind.
var finSystemWords = []string{
	"fcs ii", "fcs 2", "future fins", "futures", "fcs",
	"single fin", "twin fin", "thruster", "quad", "fins", "fin",
}

// constructionWords are construction and technology line names that describe
// how a board is built, not which model it is.
var constructionWords = []string{
	"helium", "lft", "timbertek", "spine-tek", "spinetek", "dark arts",
	"thunderbolt", "polyurethane", "epoxy", "eps", "pu", "carbon", "soft top",
}

// fillerWords are generic listing noise with no model signal.
var fillerWords = []string{
	"by", "x", "v", "vol", "volume", "liters", "l",
	"new", "pre-owned", "used", "surfboard", "surfboards", "board",
}

// noisePatterns is the full strip list in removal order: multi-word entries
// within each vocabulary precede their substrings.
var noisePatterns = compileNoisePatterns()

func compileNoisePatterns() []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, group := range [][]string{finSystemWords, constructionWords, colorFinishWords, fillerWords} {
		for _, word := range group {
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(word)+`\b`))
		}
	}
	return patterns
}

// ExtractModel reduces a raw title to its model string. The pipeline order is
// load-bearing: dimension substrings are stripped before lowercasing and
// noise removal, and multi-word noise entries before their prefixes —
// reordering silently changes which substrings survive.
func ExtractModel(title, brand string) string {
	text := title

	// Remove the supplied brand, then every known brand literal. The second
	// pass catches brands the caller did not extract and sub-brand mentions.
	if brand != "" {
		brandPattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(brand) + `\b`)
		text = brandPattern.ReplaceAllString(text, " ")
	}
	text = stripKnownBrands(text)

	// Dimension blocks next, globally, while original casing is intact.
	text = StripDimensions(text)

	text = strings.ToLower(text)

	// Noise vocabularies: fin systems, construction tech, colors, filler.
	for _, pattern := range noisePatterns {
		text = pattern.ReplaceAllString(text, " ")
	}
	text = yearRegex.ReplaceAllString(text, " ")

	// Residual punctuation, dashes, quotes, brackets.
	text = nonAlphanumericRegex.ReplaceAllString(text, " ")

	text = multipleSpacesRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
