package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"wardrobe-reel/db"
	"wardrobe-reel/models"
)

// VideoRepository handles database operations for the video history
// Implements VideoRepositoryInterface
type VideoRepository struct{}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository() *VideoRepository {
	return &VideoRepository{}
}

// Ensure VideoRepository implements VideoRepositoryInterface
var _ VideoRepositoryInterface = (*VideoRepository)(nil)

// Insert appends one video record to the user's history.
// History is append-only: a retried generation creates a second record,
// there is no dedup by video_id.
func (r *VideoRepository) Insert(ctx context.Context, record *models.VideoRecord) error {
	query := `
		INSERT INTO videos (
			id, user_id, video_id, video_url, thumbnail_url, title,
			duration, file_size, template, articles_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := db.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.VideoID,
		record.VideoURL,
		record.ThumbnailURL,
		record.Title,
		record.Duration,
		record.FileSize,
		record.Template,
		record.ArticlesCount,
		record.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for video %s: %v", record.VideoID, err)
		return fmt.Errorf("failed to insert video record: %w", err)
	}

	return nil
}

// ListByUser returns the user's video history, newest first
func (r *VideoRepository) ListByUser(ctx context.Context, userID string) ([]models.VideoRecord, error) {
	query := `
		SELECT id, user_id, video_id, video_url, thumbnail_url, title,
		       duration, file_size, template, articles_count, created_at
		FROM videos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var records []models.VideoRecord
	for rows.Next() {
		var rec models.VideoRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.VideoID,
			&rec.VideoURL,
			&rec.ThumbnailURL,
			&rec.Title,
			&rec.Duration,
			&rec.FileSize,
			&rec.Template,
			&rec.ArticlesCount,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate video records: %w", err)
	}

	return records, nil
}

// Delete removes one record, scoped to the owning user. Deleting a
// record that does not exist or belongs to another user is an error
// and removes nothing.
func (r *VideoRepository) Delete(ctx context.Context, recordID string, userID string) error {
	query := `DELETE FROM videos WHERE id = $1 AND user_id = $2`

	result, err := db.DB.ExecContext(ctx, query, recordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete video record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("video record %s not found for user", recordID)
	}

	return nil
}
