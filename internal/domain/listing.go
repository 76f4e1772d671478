package domain

// ProductListing represents a single vendor listing from the aggregated catalog
type ProductListing struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Shaper string  `json:"shaper,omitempty"`
	Source string  `json:"source"` // vendor identifier, e.g. "boardcave"
	URL    string  `json:"url,omitempty"`
	Price  float64 `json:"price,omitempty"`
}

// ProductSignature is the comparable form derived from a listing title.
// Brand is "" when no known brand was recognized; LengthInches is nil when
// no parseable length substring was found.
type ProductSignature struct {
	Brand        string   `json:"brand,omitempty"`
	Model        string   `json:"model"`
	LengthInches *float64 `json:"lengthInches,omitempty"`
	Source       string   `json:"source"`
}

// SignatureComparison is the per-pair scoring breakdown
type SignatureComparison struct {
	Score                  float64  `json:"score"` // composite confidence in [0,1]
	BrandMatch             bool     `json:"brandMatch"`
	ModelSimilarity        float64  `json:"modelSimilarity"`
	LengthDifferenceInches *float64 `json:"lengthDifferenceInches,omitempty"`
}

// DuplicateMatch pairs two listings believed to be the same physical board.
// Reported once per unordered pair; the full facet breakdown is carried for
// auditability.
type DuplicateMatch struct {
	ProductID        string   `json:"productId"`
	MatchedProductID string   `json:"matchedProductId"`
	Score            float64  `json:"score"`
	Brand1           string   `json:"brand1,omitempty"`
	Brand2           string   `json:"brand2,omitempty"`
	Model1           string   `json:"model1"`
	Model2           string   `json:"model2"`
	Length1          *float64 `json:"length1,omitempty"`
	Length2          *float64 `json:"length2,omitempty"`
}

// MatcherConfig holds the matching policy for a single comparison pass.
// Immutable per invocation; every call passes or defaults its own copy.
type MatcherConfig struct {
	LengthToleranceInches    float64 `json:"lengthToleranceInches"`
	RequireBrandMatch        bool    `json:"requireBrandMatch"`
	ModelSimilarityThreshold float64 `json:"modelSimilarityThreshold"`
	MinConfidenceToAutoLink  float64 `json:"minConfidenceToAutoLink"`
}

// DefaultMatcherConfig returns the standard matching policy
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		LengthToleranceInches:    1,
		RequireBrandMatch:        false,
		ModelSimilarityThreshold: 0.8,
		MinConfidenceToAutoLink:  0.7,
	}
}

// ScanOptions controls a single duplicate-finding pass
type ScanOptions struct {
	Threshold       float64       `json:"threshold"`       // minimum score to report a match at all
	CrossSourceOnly bool          `json:"crossSourceOnly"` // skip pairs sharing a source
	Config          MatcherConfig `json:"config"`
}

// DefaultScanOptions returns the standard scan settings
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Threshold:       0.85,
		CrossSourceOnly: true,
		Config:          DefaultMatcherConfig(),
	}
}
