package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for reading the aggregated listing catalog.
// The engine never fetches listings itself; this is the input collaborator.
type CatalogClient interface {
	ListListings(ctx context.Context, source string) ([]ProductListing, error)
	GetListing(ctx context.Context, id string) (*ProductListing, error)
}

// ScanCache caches the result of a full duplicate scan keyed by its options
type ScanCache interface {
	Get(ctx context.Context, key string) ([]DuplicateMatch, error)
	Set(ctx context.Context, key string, matches []DuplicateMatch, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MatchRepository persists duplicate matches for review and auto-linking.
// The engine only computes scores; linking decisions live behind this interface.
type MatchRepository interface {
	Save(ctx context.Context, match *DuplicateMatch) error
	ListRecent(ctx context.Context, limit int) ([]DuplicateMatch, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
