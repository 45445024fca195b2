package service

import (
	"context"
	"log"

	"wardrobe-reel/models"
	"wardrobe-reel/repository"
)

// EntitlementService is the ledger gating video generation. Subscription
// quota is always preferred over bonus credits: credits are the overflow
// pool and are spent last. Consumption goes through atomic conditional
// updates, so concurrent consumers cannot over-spend either pool.
// Implements EntitlementServiceInterface
type EntitlementService struct {
	subscriptions repository.SubscriptionRepositoryInterface
	credits       repository.CreditRepositoryInterface
	analytics     repository.AnalyticsRepositoryInterface
}

// NewEntitlementService creates a new EntitlementService
func NewEntitlementService(
	subscriptions repository.SubscriptionRepositoryInterface,
	credits repository.CreditRepositoryInterface,
	analytics repository.AnalyticsRepositoryInterface,
) *EntitlementService {
	return &EntitlementService{
		subscriptions: subscriptions,
		credits:       credits,
		analytics:     analytics,
	}
}

// Ensure EntitlementService implements EntitlementServiceInterface
var _ EntitlementServiceInterface = (*EntitlementService)(nil)

// Entitlement returns the user's combined quota and credit state
func (s *EntitlementService) Entitlement(ctx context.Context, userID string) (*models.Entitlement, error) {
	sub, err := s.subscriptions.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.credits.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Entitlement{Subscription: *sub, BonusCredits: balance}, nil
}

// CanGenerate reports whether the user has quota or credits left
func (s *EntitlementService) CanGenerate(ctx context.Context, userID string) (bool, error) {
	ent, err := s.Entitlement(ctx, userID)
	if err != nil {
		return false, err
	}
	return ent.CanGenerate(), nil
}

// Remaining returns the total usable generation allowance
func (s *EntitlementService) Remaining(ctx context.Context, userID string) (int, error) {
	ent, err := s.Entitlement(ctx, userID)
	if err != nil {
		return 0, err
	}
	return ent.Remaining(), nil
}

// Consume spends one generation: subscription quota first, then bonus
// credits. Returns false when neither pool has anything left. On
// success the lifetime analytics counters are bumped; an analytics
// failure is logged and swallowed, it never undoes the consumption.
func (s *EntitlementService) Consume(ctx context.Context, userID string, articlesCount int) (bool, error) {
	consumed, err := s.subscriptions.ConsumeQuota(ctx, userID)
	if err != nil {
		return false, err
	}

	if !consumed {
		consumed, err = s.credits.ConsumeCredit(ctx, userID)
		if err != nil {
			return false, err
		}
		if consumed {
			log.Printf("💳 Bonus credit spent for user %s", userID)
		}
	}

	if !consumed {
		return false, nil
	}

	if err := s.analytics.RecordGeneration(ctx, userID, articlesCount); err != nil {
		log.Printf("⚠️  Failed to record generation analytics for user %s: %v", userID, err)
	}

	return true, nil
}
