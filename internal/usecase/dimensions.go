package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// DimensionResult holds a parsed board length and the substring it came from
type DimensionResult struct {
	LengthInches float64 `json:"lengthInches"`
	Original     string  `json:"original"`
}

// Regex fragments shared by the dimension patterns. Vendors write lengths as
// 5'8, 5'8", 5-8, 5ft 8in, or as the first component of a full dimension
// block like 5'8" x 20 1/4 x 2 1/2.
const (
	inchExpr    = `\d{1,2}(?:\.\d+)?(?:\s*\d{1,2}\s*/\s*\d{1,2})?`
	feetExpr    = `(\d{1,2})\s*['’]\s*(` + inchExpr + `)?\s*["”]?`
	measureExpr = `(?:` + inchExpr + `)\s*["”]?`
	xSep        = `\s*[x×X]\s*`
)

// Package-level compiled patterns, tried in priority order. The dash pattern
// is last and range-guarded so model numbers like "V3-500" are not read as
// board lengths.
var (
	threePartPattern = regexp.MustCompile(feetExpr + xSep + measureExpr + xSep + measureExpr)
	twoPartPattern   = regexp.MustCompile(feetExpr + xSep + measureExpr)
	feetPrimePattern = regexp.MustCompile(feetExpr)
	feetWordPattern  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*ft\.?(?:\s*(` + inchExpr + `)\s*in\.?)?`)
	dashPattern      = regexp.MustCompile(`\b(\d{1,2})\s*-\s*(\d{1,2})\b`)
)

// orderedDimensionPatterns is the pattern family used both for first-match
// extraction and for global stripping in the model extractor.
var orderedDimensionPatterns = []*regexp.Regexp{
	threePartPattern,
	twoPartPattern,
	feetPrimePattern,
	feetWordPattern,
}

// NormalizeDimensions parses the first board length found in free text into
// total inches. Returns nil when no pattern matches; it never errors.
func NormalizeDimensions(text string) *DimensionResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	for _, pattern := range orderedDimensionPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		feet, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		inches := parseInchValue(m[2])
		return &DimensionResult{
			LengthInches: float64(feet)*12 + inches,
			Original:     strings.TrimSpace(m[0]),
		}
	}

	// Dash notation is ambiguous (model numbers, SKUs), so only accept
	// plausible board sizes: feet 4-12, inches 0-11.
	for _, m := range dashPattern.FindAllStringSubmatch(text, -1) {
		feet, errF := strconv.Atoi(m[1])
		inches, errI := strconv.Atoi(m[2])
		if errF != nil || errI != nil {
			continue
		}
		if feet < 4 || feet > 12 || inches < 0 || inches > 11 {
			continue
		}
		return &DimensionResult{
			LengthInches: float64(feet*12 + inches),
			Original:     strings.TrimSpace(m[0]),
		}
	}

	return nil
}

// StripDimensions removes every dimension substring from the text. Used by
// the model extractor; applies the same pattern family as NormalizeDimensions
// but globally, with the dash pattern still range-guarded.
func StripDimensions(text string) string {
	for _, pattern := range orderedDimensionPatterns {
		text = pattern.ReplaceAllString(text, " ")
	}
	text = dashPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := dashPattern.FindStringSubmatch(match)
		feet, errF := strconv.Atoi(m[1])
		inches, errI := strconv.Atoi(m[2])
		if errF != nil || errI != nil {
			return match
		}
		if feet < 4 || feet > 12 || inches < 0 || inches > 11 {
			return match
		}
		return " "
	})
	return text
}

// parseInchValue converts an inch component to a decimal value. Accepts plain
// numbers ("8"), decimals ("8.5"), and whole-plus-fraction ("8 1/2", "20 13/16").
// Empty input (bare feet like 5') is zero inches.
func parseInchValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	total := 0.0
	for _, field := range strings.Fields(s) {
		if num, den, ok := strings.Cut(field, "/"); ok {
			n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
			d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
			if errN == nil && errD == nil && d != 0 {
				total += n / d
			}
			continue
		}
		if v, err := strconv.ParseFloat(field, 64); err == nil {
			total += v
		}
	}
	return total
}
