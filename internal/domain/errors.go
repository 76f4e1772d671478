package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrListingNotFound is returned when the catalog has no listings to scan
	ErrListingNotFound = errors.New("no listings found in catalog")

	// ErrCatalogAPIFailure is returned when a catalog API request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreDisabled is returned when a match-store operation is requested
	// but no database is configured
	ErrStoreDisabled = errors.New("match store not configured")
)
