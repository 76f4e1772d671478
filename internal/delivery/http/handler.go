package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quiverlens/backend/internal/domain"
	"github.com/quiverlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	dupes   *usecase.DuplicateService
	matches domain.MatchRepository // nil when no store is configured
}

// NewHandler creates a new HTTP handler
func NewHandler(dupes *usecase.DuplicateService, matches domain.MatchRepository) *Handler {
	return &Handler{
		dupes:   dupes,
		matches: matches,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "quiverlens-backend",
		"version": "1.0.0",
	})
}

// extractRequest is the body for signature extraction
type extractRequest struct {
	Name   string `json:"name" binding:"required"`
	Source string `json:"source"`
}

// ExtractSignature derives the structured signature for a single title
func (h *Handler) ExtractSignature(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	sig := usecase.ExtractProductSignature(req.Name, req.Source)
	c.JSON(http.StatusOK, sig)
}

// compareRequest is the body for a direct two-listing comparison
type compareRequest struct {
	A      domain.ProductListing `json:"a" binding:"required"`
	B      domain.ProductListing `json:"b" binding:"required"`
	Config domain.MatcherConfig  `json:"config"`
}

// CompareListings scores two listings against each other
func (h *Handler) CompareListings(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both listings are required"})
		return
	}
	if req.A.Name == "" || req.B.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both listings need a name"})
		return
	}

	comparison := h.dupes.CompareListings(req.A, req.B, req.Config)
	c.JSON(http.StatusOK, comparison)
}

// scanRequest overrides a subset of the service's default scan options.
// Pointer fields distinguish "not set" from explicit zero values.
type scanRequest struct {
	Threshold       *float64              `json:"threshold"`
	CrossSourceOnly *bool                 `json:"crossSourceOnly"`
	Config          *domain.MatcherConfig `json:"config"`
}

// ScanDuplicates runs a full catalog duplicate scan
func (h *Handler) ScanDuplicates(c *gin.Context) {
	// An empty body means "use the configured defaults"
	var req scanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scan options"})
			return
		}
	}

	opts := h.dupes.DefaultOptions()
	if req.Threshold != nil {
		opts.Threshold = *req.Threshold
	}
	if req.CrossSourceOnly != nil {
		opts.CrossSourceOnly = *req.CrossSourceOnly
	}
	if req.Config != nil {
		opts.Config = *req.Config
	}

	matches, err := h.dupes.ScanCatalog(c.Request.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no listings found in catalog"})
		case errors.Is(err, domain.ErrCatalogAPIFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// parsePositiveInt parses a query parameter as a positive integer
func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// ListMatches returns persisted matches for review, highest score first
func (h *Handler) ListMatches(c *gin.Context) {
	if h.matches == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrStoreDisabled.Error()})
		return
	}

	limit := 50
	if v, ok := c.GetQuery("limit"); ok {
		if parsed, err := parsePositiveInt(v); err == nil {
			limit = parsed
		}
	}

	matches, err := h.matches.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}
