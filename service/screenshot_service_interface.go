package service

import (
	"context"

	"wardrobe-reel/models"
)

// ScreenshotServiceInterface defines the contract for profile page capture
type ScreenshotServiceInterface interface {
	CaptureProfileScreenshot(ctx context.Context, wardrobeURL string) (*models.ProfileScreenshot, error)
}
