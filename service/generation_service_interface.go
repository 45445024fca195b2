package service

import (
	"context"

	"wardrobe-reel/models"
)

// GenerationInput is everything one render attempt needs, resolved from
// the session before the pipeline starts.
type GenerationInput struct {
	UserID              string
	Username            string
	Articles            []models.WardrobeItem
	Config              models.VideoConfig
	ProfileScreenshotID string
}

// GenerationServiceInterface defines the contract for the generation pipeline
type GenerationServiceInterface interface {
	Generate(ctx context.Context, job *models.GenerationJob, in GenerationInput) error
}
