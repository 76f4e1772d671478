package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quiverlens/backend/config"
	"github.com/quiverlens/backend/internal/domain"
	"github.com/quiverlens/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

// stubCatalog serves a fixed listing set
type stubCatalog struct {
	listings []domain.ProductListing
}

func (s *stubCatalog) ListListings(ctx context.Context, source string) ([]domain.ProductListing, error) {
	return s.listings, nil
}

func (s *stubCatalog) GetListing(ctx context.Context, id string) (*domain.ProductListing, error) {
	return nil, domain.ErrListingNotFound
}

// stubCache never hits
type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) ([]domain.DuplicateMatch, error) {
	return nil, domain.ErrCacheMiss
}

func (stubCache) Set(ctx context.Context, key string, matches []domain.DuplicateMatch, ttl time.Duration) error {
	return nil
}

func (stubCache) Delete(ctx context.Context, key string) error {
	return nil
}

// setupTestRouter creates a test router backed by a stub catalog
func setupTestRouter(listings []domain.ProductListing) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
	}

	svc := usecase.NewDuplicateService(
		&stubCatalog{listings: listings},
		stubCache{},
		nil,
		usecase.DuplicateServiceConfig{ScanOptions: domain.DefaultScanOptions()},
	)

	handler := NewHandler(svc, nil)
	return SetupRouter(cfg, handler)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(nil)

	w := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", resp["status"])
	}
}

func TestExtractSignature(t *testing.T) {
	router := setupTestRouter(nil)

	t.Run("returns the structured signature", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/signatures/extract",
			`{"name": "Firewire Seaside 5'8\" Surfboard", "source": "vendor-a"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var sig domain.ProductSignature
		if err := json.Unmarshal(w.Body.Bytes(), &sig); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if sig.Brand != "firewire" {
			t.Errorf("brand = %q, want firewire", sig.Brand)
		}
		if sig.Model != "seaside" {
			t.Errorf("model = %q, want seaside", sig.Model)
		}
		if sig.LengthInches == nil || *sig.LengthInches != 68 {
			t.Errorf("lengthInches = %v, want 68", sig.LengthInches)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/signatures/extract", `{"source": "vendor-a"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCompareListings(t *testing.T) {
	router := setupTestRouter(nil)

	t.Run("scores two listings", func(t *testing.T) {
		body := `{
			"a": {"id": "1", "name": "Firewire Seaside 5'8\"", "source": "vendor-a"},
			"b": {"id": "2", "name": "Firewire Seaside 5'8\" Surfboard", "source": "vendor-b"}
		}`
		w := doRequest(router, "POST", "/api/v1/duplicates/compare", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var cmp domain.SignatureComparison
		if err := json.Unmarshal(w.Body.Bytes(), &cmp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if cmp.Score < 0.85 {
			t.Errorf("score = %v, want >= 0.85", cmp.Score)
		}
		if !cmp.BrandMatch {
			t.Error("brandMatch = false, want true")
		}
	})

	t.Run("rejects listings without names", func(t *testing.T) {
		body := `{"a": {"id": "1", "source": "vendor-a"}, "b": {"id": "2", "source": "vendor-b"}}`
		w := doRequest(router, "POST", "/api/v1/duplicates/compare", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestScanDuplicates(t *testing.T) {
	listings := []domain.ProductListing{
		{ID: "1", Name: "Firewire Seaside 5'8 x 20 1/4 x 2 1/2 - Helium", Source: "vendor-a"},
		{ID: "2", Name: `Firewire Seaside 5'8" Surfboard`, Source: "vendor-b"},
	}
	router := setupTestRouter(listings)

	t.Run("scans with defaults on empty body", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/duplicates/scan", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Matches []domain.DuplicateMatch `json:"matches"`
			Count   int                     `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Count != 1 {
			t.Errorf("count = %d, want 1", resp.Count)
		}
	})

	t.Run("honors a raised threshold", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/duplicates/scan", `{"threshold": 1.01}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Count != 0 {
			t.Errorf("count = %d, want 0 above the maximum score", resp.Count)
		}
	})

	t.Run("empty catalog returns 404", func(t *testing.T) {
		emptyRouter := setupTestRouter(nil)
		w := doRequest(emptyRouter, "POST", "/api/v1/duplicates/scan", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("rejects malformed options", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/duplicates/scan", `{"threshold": "high"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestListMatches(t *testing.T) {
	t.Run("returns 503 when no store is configured", func(t *testing.T) {
		router := setupTestRouter(nil)
		w := doRequest(router, "GET", "/api/v1/matches", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}
