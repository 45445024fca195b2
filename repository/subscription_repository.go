package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wardrobe-reel/db"
	"wardrobe-reel/models"
)

// Users without a subscription row get the free tier with this many videos
const defaultFreeVideoLimit = 1

// SubscriptionRepository handles database operations for subscription quota
// Implements SubscriptionRepositoryInterface
type SubscriptionRepository struct{}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// Ensure SubscriptionRepository implements SubscriptionRepositoryInterface
var _ SubscriptionRepositoryInterface = (*SubscriptionRepository)(nil)

// GetByUserID returns the user's subscription. A user without a row is
// treated as an active free subscriber, not as an error.
func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID string) (*models.Subscription, error) {
	query := `
		SELECT plan, status, videos_limit, videos_used, period_end
		FROM subscriptions
		WHERE user_id = $1
	`

	var (
		sub       models.Subscription
		plan      string
		periodEnd sql.NullTime
	)
	err := db.DB.QueryRowContext(ctx, query, userID).Scan(
		&plan,
		&sub.Status,
		&sub.VideosLimit,
		&sub.VideosUsed,
		&periodEnd,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Subscription{
			UserID:      userID,
			Plan:        models.PlanFree,
			Status:      "active",
			VideosLimit: defaultFreeVideoLimit,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	sub.UserID = userID
	sub.Plan = models.ParsePlan(plan)
	if periodEnd.Valid {
		sub.PeriodEnd = periodEnd.Time
	}
	return &sub, nil
}

// ConsumeQuota atomically uses one video of the subscription quota.
// The conditional update means two concurrent consumers can never
// push videos_used past videos_limit; the affected-row count is the
// success signal.
func (r *SubscriptionRepository) ConsumeQuota(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE subscriptions
		SET videos_used = videos_used + 1
		WHERE user_id = $1
		  AND status = 'active'
		  AND videos_used < videos_limit
	`

	result, err := db.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to consume subscription quota: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
