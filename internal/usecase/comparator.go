package usecase

import "github.com/quiverlens/backend/internal/domain"

// Composite score weights. Model similarity is the primary discriminator;
// brand is a hard filter, length is confirmatory but forgiving since vendors
// round and measure slightly differently.
const (
	modelWeight          = 0.6
	brandKnownBonus      = 0.20 // both brands known and equal
	brandUnknownBonus    = 0.10 // both brands unknown, match not required
	lengthPresentBonus   = 0.20 // both lengths present and within tolerance
	lengthMissingBonus   = 0.10 // either side lacks a length
	partialScoreFactor   = 0.5  // suppressed score for sub-threshold models
	lengthPenaltyDivisor = 6.0  // inches of difference per full penalty unit
	lengthPenaltyCap     = 0.5  // penalty maxes out at 3+ inches over tolerance
)

// CompareSignatures scores two signatures under the given matching policy.
// Gates run in order: brand (hard), model (primary), length (confirmatory).
// Symmetric in its arguments; diagnostics are populated even on early exit.
func CompareSignatures(a, b domain.ProductSignature, cfg domain.MatcherConfig) domain.SignatureComparison {
	result := domain.SignatureComparison{
		BrandMatch:      compareBrands(a.Brand, b.Brand, cfg.RequireBrandMatch),
		ModelSimilarity: CalculateSimilarity(a.Model, b.Model),
	}

	if a.LengthInches != nil && b.LengthInches != nil {
		diff := *a.LengthInches - *b.LengthInches
		if diff < 0 {
			diff = -diff
		}
		result.LengthDifferenceInches = &diff
	}

	// Brand gate: cross-brand pairs must never score, whatever the models say.
	if !result.BrandMatch {
		result.Score = 0
		return result
	}

	// Model gate: below the similarity threshold the score is deliberately
	// suppressed — never competitive with a full match, but ranking
	// information survives for manual review.
	if result.ModelSimilarity < cfg.ModelSimilarityThreshold {
		result.Score = result.ModelSimilarity * partialScoreFactor
		return result
	}

	// Length gate: linear penalty beyond tolerance, capped at half the
	// model similarity contribution.
	if result.LengthDifferenceInches != nil && *result.LengthDifferenceInches > cfg.LengthToleranceInches {
		penalty := *result.LengthDifferenceInches / lengthPenaltyDivisor
		if penalty > lengthPenaltyCap {
			penalty = lengthPenaltyCap
		}
		score := result.ModelSimilarity - penalty
		if score < 0 {
			score = 0
		}
		result.Score = score
		return result
	}

	// Full match: weighted composite. Confirmed brand matches reward more
	// than double-unknown pairs; unknowns are not penalized.
	score := result.ModelSimilarity * modelWeight

	if a.Brand != "" && b.Brand != "" {
		score += brandKnownBonus
	} else if a.Brand == "" && b.Brand == "" && !cfg.RequireBrandMatch {
		score += brandUnknownBonus
	}

	if result.LengthDifferenceInches != nil {
		score += lengthPresentBonus
	} else {
		score += lengthMissingBonus
	}

	if score > 1 {
		score = 1
	}
	result.Score = score
	return result
}

// compareBrands applies the brand gate. Two known brands must be exactly
// equal; a missing brand on either side is neutral unless a brand match is
// required by policy.
func compareBrands(brand1, brand2 string, required bool) bool {
	if brand1 != "" && brand2 != "" {
		return brand1 == brand2
	}
	if required {
		return false
	}
	return true
}
