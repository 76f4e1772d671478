package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/quiverlens/backend/config"
	httpDelivery "github.com/quiverlens/backend/internal/delivery/http"
	"github.com/quiverlens/backend/internal/domain"
	"github.com/quiverlens/backend/internal/infrastructure/cache"
	"github.com/quiverlens/backend/internal/infrastructure/catalog"
	"github.com/quiverlens/backend/internal/infrastructure/store"
	"github.com/quiverlens/backend/internal/usecase"
)

func main() {
	// Load a local .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting QuiverLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	scanCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogClient := catalog.NewClient(cfg.Catalog.APIKey, cfg.Catalog.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	var matchStore domain.MatchRepository
	if cfg.Database.DSN != "" {
		s, err := store.NewMatchStore(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("Failed to open match store: %v", err)
		}
		matchStore = s
		log.Printf("Match store enabled")
	} else {
		log.Printf("Match store disabled (no database DSN configured)")
	}

	// Initialize usecase layer
	dupeService := usecase.NewDuplicateService(
		catalogClient,
		scanCache,
		matchStore,
		usecase.DuplicateServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			ScanOptions: domain.ScanOptions{
				Threshold:       cfg.Matching.ScanThreshold,
				CrossSourceOnly: cfg.Matching.CrossSourceOnly,
				Config: domain.MatcherConfig{
					LengthToleranceInches:    cfg.Matching.LengthToleranceInches,
					RequireBrandMatch:        cfg.Matching.RequireBrandMatch,
					ModelSimilarityThreshold: cfg.Matching.ModelSimilarityThreshold,
					MinConfidenceToAutoLink:  cfg.Matching.MinConfidenceToAutoLink,
				},
			},
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: scanThreshold=%.2f modelThreshold=%.2f lengthTolerance=%.1f\" crossSourceOnly=%v",
		cfg.Matching.ScanThreshold,
		cfg.Matching.ModelSimilarityThreshold,
		cfg.Matching.LengthToleranceInches,
		cfg.Matching.CrossSourceOnly)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(dupeService, matchStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
