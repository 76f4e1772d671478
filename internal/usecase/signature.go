package usecase

import "github.com/quiverlens/backend/internal/domain"

// ExtractProductSignature derives the comparable signature for a listing
// title. Pure composition of the brand, model, and dimension extractors; a
// title with no recognizable signal yields an empty signature, never an error.
func ExtractProductSignature(title, source string) domain.ProductSignature {
	brand := ExtractBrand(title)

	sig := domain.ProductSignature{
		Brand:  brand,
		Model:  ExtractModel(title, brand),
		Source: source,
	}

	if dim := NormalizeDimensions(title); dim != nil {
		length := dim.LengthInches
		sig.LengthInches = &length
	}

	return sig
}
