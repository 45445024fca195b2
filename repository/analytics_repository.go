package repository

import (
	"context"
	"fmt"
	"time"

	"wardrobe-reel/db"
)

// AnalyticsRepository handles database operations for lifetime usage counters
// Implements AnalyticsRepositoryInterface
type AnalyticsRepository struct{}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// Ensure AnalyticsRepository implements AnalyticsRepositoryInterface
var _ AnalyticsRepositoryInterface = (*AnalyticsRepository)(nil)

// RecordGeneration bumps the user's lifetime generated-video and
// articles-used counters and stamps the last-generation time.
func (r *AnalyticsRepository) RecordGeneration(ctx context.Context, userID string, articlesCount int) error {
	query := `
		INSERT INTO analytics (user_id, videos_generated, articles_used, last_generated_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET videos_generated  = analytics.videos_generated + 1,
		    articles_used     = analytics.articles_used + EXCLUDED.articles_used,
		    last_generated_at = EXCLUDED.last_generated_at
	`

	_, err := db.DB.ExecContext(ctx, query, userID, articlesCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record generation analytics: %w", err)
	}
	return nil
}
