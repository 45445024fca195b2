package service

import (
	"context"

	"wardrobe-reel/models"
)

// EntitlementServiceInterface defines the contract for the generation
// allowance ledger: subscription quota plus bonus credits.
type EntitlementServiceInterface interface {
	Entitlement(ctx context.Context, userID string) (*models.Entitlement, error)
	CanGenerate(ctx context.Context, userID string) (bool, error)
	Remaining(ctx context.Context, userID string) (int, error)
	Consume(ctx context.Context, userID string, articlesCount int) (bool, error)
}
