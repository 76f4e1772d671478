package catalog

import (
	"strings"

	"github.com/quiverlens/backend/internal/domain"
)

// wireListing is a listing as the aggregator API serializes it
type wireListing struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Shaper   string  `json:"shaper,omitempty"`
	Vendor   string  `json:"vendor"`
	URL      string  `json:"url,omitempty"`
	PriceUSD float64 `json:"priceUsd,omitempty"`
}

// listingsResponse is the aggregator's list envelope
type listingsResponse struct {
	Listings []wireListing `json:"listings"`
	Total    int           `json:"total"`
}

// mapListing converts a wire listing to the domain model. Vendor identifiers
// are normalized to lowercase since cross-source filtering compares them
// verbatim.
func mapListing(w wireListing) domain.ProductListing {
	return domain.ProductListing{
		ID:     w.ID,
		Name:   strings.TrimSpace(w.Title),
		Shaper: strings.TrimSpace(w.Shaper),
		Source: strings.ToLower(strings.TrimSpace(w.Vendor)),
		URL:    w.URL,
		Price:  w.PriceUSD,
	}
}

func mapListings(wire []wireListing) []domain.ProductListing {
	listings := make([]domain.ProductListing, 0, len(wire))
	for _, w := range wire {
		listings = append(listings, mapListing(w))
	}
	return listings
}
