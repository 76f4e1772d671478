package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Matching MatchingConfig
	Database DatabaseConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds listing-aggregator API configuration
type CatalogConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds scan-result cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds the default matching policy. Every scan can override
// these per request; nothing here is mutated at runtime.
type MatchingConfig struct {
	LengthToleranceInches    float64 `mapstructure:"length_tolerance_inches"`
	RequireBrandMatch        bool    `mapstructure:"require_brand_match"`
	ModelSimilarityThreshold float64 `mapstructure:"model_similarity_threshold"`
	MinConfidenceToAutoLink  float64 `mapstructure:"min_confidence_to_auto_link"`
	ScanThreshold            float64 `mapstructure:"scan_threshold"`
	CrossSourceOnly          bool    `mapstructure:"cross_source_only"`
	EnableDebugLogging       bool    `mapstructure:"enable_debug_logging"`
}

// DatabaseConfig holds the optional match-store configuration. An empty DSN
// disables persistence; scans then stay in memory only.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/quiverlens/")

	// Environment variable settings
	v.SetEnvPrefix("QUIVERLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://catalog.quiverlens.io")

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Matching defaults
	v.SetDefault("matching.length_tolerance_inches", 1.0)
	v.SetDefault("matching.require_brand_match", false)
	v.SetDefault("matching.model_similarity_threshold", 0.8)
	v.SetDefault("matching.min_confidence_to_auto_link", 0.7)
	v.SetDefault("matching.scan_threshold", 0.85)
	v.SetDefault("matching.cross_source_only", true)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.APIKey == "" {
		return fmt.Errorf("catalog API key is required (set QUIVERLENS_CATALOG_API_KEY)")
	}

	if t := config.Matching.ModelSimilarityThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("model similarity threshold must be in (0,1], got: %v", t)
	}

	if t := config.Matching.ScanThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("scan threshold must be in (0,1], got: %v", t)
	}

	if config.Matching.LengthToleranceInches < 0 {
		return fmt.Errorf("length tolerance must not be negative, got: %v", config.Matching.LengthToleranceInches)
	}

	return nil
}
