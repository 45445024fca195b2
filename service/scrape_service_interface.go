package service

import (
	"context"

	"wardrobe-reel/models"
)

// ScrapeServiceInterface defines the contract for wardrobe acquisition
type ScrapeServiceInterface interface {
	Scrape(ctx context.Context, wardrobeURL string) (*models.WardrobeSnapshot, error)
}
