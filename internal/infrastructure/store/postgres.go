package store

import (
	"context"
	"fmt"
	"time"

	"github.com/quiverlens/backend/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// matchRecord is the persisted form of a duplicate match
type matchRecord struct {
	ID               uint   `gorm:"primaryKey"`
	ProductID        string `gorm:"index:idx_match_pair,unique"`
	MatchedProductID string `gorm:"index:idx_match_pair,unique"`
	Score            float64
	Brand1           string
	Brand2           string
	Model1           string
	Model2           string
	Length1          *float64
	Length2          *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (matchRecord) TableName() string {
	return "duplicate_matches"
}

// MatchStore is a Postgres-backed implementation of domain.MatchRepository
type MatchStore struct {
	db *gorm.DB
}

// NewMatchStore opens a Postgres connection and migrates the match table
func NewMatchStore(dsn string) (*MatchStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&matchRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate match table: %w", err)
	}

	return &MatchStore{db: db}, nil
}

// Save upserts a match by its unordered pair. Re-running a scan refreshes the
// score and breakdown rather than duplicating rows.
func (s *MatchStore) Save(ctx context.Context, match *domain.DuplicateMatch) error {
	record := matchRecord{
		ProductID:        match.ProductID,
		MatchedProductID: match.MatchedProductID,
		Score:            match.Score,
		Brand1:           match.Brand1,
		Brand2:           match.Brand2,
		Model1:           match.Model1,
		Model2:           match.Model2,
		Length1:          match.Length1,
		Length2:          match.Length2,
	}

	result := s.db.WithContext(ctx).
		Where("product_id = ? AND matched_product_id = ?", record.ProductID, record.MatchedProductID).
		Assign(map[string]interface{}{
			"score":   record.Score,
			"brand1":  record.Brand1,
			"brand2":  record.Brand2,
			"model1":  record.Model1,
			"model2":  record.Model2,
			"length1": record.Length1,
			"length2": record.Length2,
		}).
		FirstOrCreate(&record)
	if result.Error != nil {
		return fmt.Errorf("failed to save match: %w", result.Error)
	}
	return nil
}

// ListRecent returns the most recently updated matches, highest score first
func (s *MatchStore) ListRecent(ctx context.Context, limit int) ([]domain.DuplicateMatch, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []matchRecord
	result := s.db.WithContext(ctx).
		Order("score DESC, updated_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list matches: %w", result.Error)
	}

	matches := make([]domain.DuplicateMatch, 0, len(records))
	for _, r := range records {
		matches = append(matches, domain.DuplicateMatch{
			ProductID:        r.ProductID,
			MatchedProductID: r.MatchedProductID,
			Score:            r.Score,
			Brand1:           r.Brand1,
			Brand2:           r.Brand2,
			Model1:           r.Model1,
			Model2:           r.Model2,
			Length1:          r.Length1,
			Length2:          r.Length2,
		})
	}
	return matches, nil
}

// DeleteOlderThan removes matches not refreshed since the cutoff
func (s *MatchStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&matchRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune matches: %w", result.Error)
	}
	return result.RowsAffected, nil
}
