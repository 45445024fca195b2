package repository

import (
	"context"

	"wardrobe-reel/models"
)

// VideoRepositoryInterface defines the contract for video history operations
type VideoRepositoryInterface interface {
	Insert(ctx context.Context, record *models.VideoRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.VideoRecord, error)
	Delete(ctx context.Context, recordID string, userID string) error
}

// SubscriptionRepositoryInterface defines the contract for subscription quota operations
type SubscriptionRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID string) (*models.Subscription, error)
	ConsumeQuota(ctx context.Context, userID string) (bool, error)
}

// CreditRepositoryInterface defines the contract for bonus credit operations
type CreditRepositoryInterface interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	ConsumeCredit(ctx context.Context, userID string) (bool, error)
}

// AnalyticsRepositoryInterface defines the contract for lifetime usage counters
type AnalyticsRepositoryInterface interface {
	RecordGeneration(ctx context.Context, userID string, articlesCount int) error
}
