package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quiverlens/backend/internal/domain"
)

// DuplicateServiceConfig holds configuration for the duplicate service
type DuplicateServiceConfig struct {
	CacheTTL           time.Duration
	ScanOptions        domain.ScanOptions
	EnableDebugLogging bool
}

// DuplicateService runs cross-vendor duplicate scans over the aggregated
// catalog. The scoring engine itself is pure; this service adds the catalog
// fetch, result caching, and persistence of auto-link candidates.
type DuplicateService struct {
	catalog            domain.CatalogClient
	cache              domain.ScanCache
	matches            domain.MatchRepository // nil when no store is configured
	cacheTTL           time.Duration
	defaults           domain.ScanOptions
	enableDebugLogging bool
}

// NewDuplicateService creates a duplicate service with dependencies. The
// matches repository may be nil; auto-link persistence is then skipped.
func NewDuplicateService(
	catalog domain.CatalogClient,
	cache domain.ScanCache,
	matches domain.MatchRepository,
	config DuplicateServiceConfig,
) *DuplicateService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Hour
	}

	return &DuplicateService{
		catalog:            catalog,
		cache:              cache,
		matches:            matches,
		cacheTTL:           cacheTTL,
		defaults:           normalizeScanOptions(config.ScanOptions),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// DefaultOptions returns the service-level scan defaults, for callers that
// only override a subset of fields.
func (s *DuplicateService) DefaultOptions() domain.ScanOptions {
	return s.defaults
}

// SignatureForListing builds the signature for a catalog listing. When the
// title yields no brand, the listing's shaper field is tried as a fallback
// before giving up on the brand facet.
func (s *DuplicateService) SignatureForListing(listing domain.ProductListing) domain.ProductSignature {
	sig := ExtractProductSignature(listing.Name, listing.Source)
	if sig.Brand == "" && listing.Shaper != "" {
		sig.Brand = ExtractBrand(listing.Shaper)
	}
	return sig
}

// CompareListings scores two listings directly, without a catalog scan
func (s *DuplicateService) CompareListings(a, b domain.ProductListing, cfg domain.MatcherConfig) domain.SignatureComparison {
	return CompareSignatures(s.SignatureForListing(a), s.SignatureForListing(b), normalizeMatcherConfig(cfg))
}

// FindDuplicates runs the all-pairs scan over the given listings. Signatures
// are computed once per listing up front (memoized within this call only);
// every unordered pair (i, j), i < j, is scored and kept when the score
// reaches opts.Threshold. A listing may appear in several reported matches;
// transitive-closure decisions belong to the linking consumer.
func (s *DuplicateService) FindDuplicates(
	ctx context.Context,
	listings []domain.ProductListing,
	opts domain.ScanOptions,
) ([]domain.DuplicateMatch, error) {
	opts = normalizeScanOptions(opts)

	signatures := make([]domain.ProductSignature, len(listings))
	for i, listing := range listings {
		signatures[i] = s.SignatureForListing(listing)
	}

	var found []domain.DuplicateMatch
	for i := 0; i < len(listings); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for j := i + 1; j < len(listings); j++ {
			if opts.CrossSourceOnly && listings[i].Source == listings[j].Source {
				continue
			}

			comparison := CompareSignatures(signatures[i], signatures[j], opts.Config)
			if comparison.Score < opts.Threshold {
				continue
			}

			if s.enableDebugLogging {
				log.Printf("[DUPES] %q <-> %q | score=%.3f model=%.3f brand=%v",
					listings[i].Name, listings[j].Name,
					comparison.Score, comparison.ModelSimilarity, comparison.BrandMatch)
			}

			found = append(found, domain.DuplicateMatch{
				ProductID:        listings[i].ID,
				MatchedProductID: listings[j].ID,
				Score:            comparison.Score,
				Brand1:           signatures[i].Brand,
				Brand2:           signatures[j].Brand,
				Model1:           signatures[i].Model,
				Model2:           signatures[j].Model,
				Length1:          signatures[i].LengthInches,
				Length2:          signatures[j].LengthInches,
			})
		}
	}

	return found, nil
}

// ScanCatalog fetches the full catalog, runs the duplicate scan, persists
// auto-link candidates when a match store is configured, and caches the
// result. Flow: check cache -> fetch catalog -> scan -> persist -> cache.
func (s *DuplicateService) ScanCatalog(ctx context.Context, opts domain.ScanOptions) ([]domain.DuplicateMatch, error) {
	opts = normalizeScanOptions(opts)
	cacheKey := scanCacheKey(opts)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if s.enableDebugLogging {
			log.Printf("[SCAN] cache hit for %s (%d matches)", cacheKey, len(cached))
		}
		return cached, nil
	}

	listings, err := s.catalog.ListListings(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	if len(listings) == 0 {
		return nil, domain.ErrListingNotFound
	}

	found, err := s.FindDuplicates(ctx, listings, opts)
	if err != nil {
		return nil, err
	}

	if s.matches != nil {
		for i := range found {
			if found[i].Score < opts.Config.MinConfidenceToAutoLink {
				continue
			}
			if err := s.matches.Save(ctx, &found[i]); err != nil {
				// Persistence failures don't invalidate the scan itself.
				log.Printf("[SCAN] failed to persist match %s <-> %s: %v",
					found[i].ProductID, found[i].MatchedProductID, err)
			}
		}
	}

	if err := s.cache.Set(ctx, cacheKey, found, s.cacheTTL); err != nil {
		log.Printf("[SCAN] failed to cache results: %v", err)
	}

	return found, nil
}

// scanCacheKey builds a deterministic cache key from normalized scan options
func scanCacheKey(opts domain.ScanOptions) string {
	return fmt.Sprintf("scan:%.2f:%t:%.2f:%t:%.2f:%.2f",
		opts.Threshold,
		opts.CrossSourceOnly,
		opts.Config.ModelSimilarityThreshold,
		opts.Config.RequireBrandMatch,
		opts.Config.LengthToleranceInches,
		opts.Config.MinConfidenceToAutoLink,
	)
}

// normalizeScanOptions fills zero-valued numeric fields with defaults.
// Boolean flags are taken as given.
func normalizeScanOptions(opts domain.ScanOptions) domain.ScanOptions {
	if opts.Threshold <= 0 {
		opts.Threshold = domain.DefaultScanOptions().Threshold
	}
	opts.Config = normalizeMatcherConfig(opts.Config)
	return opts
}

func normalizeMatcherConfig(cfg domain.MatcherConfig) domain.MatcherConfig {
	defaults := domain.DefaultMatcherConfig()
	if cfg.LengthToleranceInches <= 0 {
		cfg.LengthToleranceInches = defaults.LengthToleranceInches
	}
	if cfg.ModelSimilarityThreshold <= 0 {
		cfg.ModelSimilarityThreshold = defaults.ModelSimilarityThreshold
	}
	if cfg.MinConfidenceToAutoLink <= 0 {
		cfg.MinConfidenceToAutoLink = defaults.MinConfidenceToAutoLink
	}
	return cfg
}
