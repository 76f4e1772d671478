package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/quiverlens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the listing-aggregator API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog API client
func NewClient(apiKey, baseURL string) *Client {
	// The aggregator allows 600 requests per hour; 600/3600 ≈ 0.167 req/sec
	limiter := rate.NewLimiter(rate.Limit(0.167), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "QuiverLens/1.0")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}

// ListListings fetches listings from the catalog, optionally filtered by
// vendor source. An empty source returns the full catalog.
func (c *Client) ListListings(ctx context.Context, source string) ([]domain.ProductListing, error) {
	if c.debug {
		log.Printf("[CATALOG] ListListings called with source: %q", source)
	}

	endpoint := fmt.Sprintf("%s/v1/listings", c.baseURL)
	params := url.Values{}
	if source != "" {
		params.Add("source", source)
	}
	params.Add("pageSize", "500")

	reqURL := endpoint
	if encoded := params.Encode(); encoded != "" {
		reqURL = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrListingNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var listResp listingsResponse
		if err := json.Unmarshal(body, &listResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[CATALOG] fetched %d listings (total: %d)", len(listResp.Listings), listResp.Total)
		}
		return mapListings(listResp.Listings), nil
	}

	return nil, lastErr
}

// GetListing retrieves a single listing by ID
func (c *Client) GetListing(ctx context.Context, id string) (*domain.ProductListing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/listings/%s", c.baseURL, url.PathEscape(id))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrListingNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogAPIFailure, resp.StatusCode, string(body))
	}

	var wire wireListing
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	listing := mapListing(wire)
	return &listing, nil
}
