package service

import (
	"context"

	"wardrobe-reel/models"
)

// RenderServiceInterface defines the contract for the external video
// generation API
type RenderServiceInterface interface {
	GenerateVideo(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	FetchAsset(ctx context.Context, assetURL string) ([]byte, error)
	DownloadURL(videoID string) string
	ListMusicTracks(ctx context.Context) []models.MusicTrack
}

// RenderArticle is the per-item payload sent to the render service
type RenderArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
	Brand    string `json:"brand,omitempty"`
}

// RenderRequest is the render submission payload
type RenderRequest struct {
	Articles            []RenderArticle `json:"articles"`
	Duration            int             `json:"duration"`
	MusicTrack          string          `json:"musicTrack"`
	Title               string          `json:"title"`
	Template            string          `json:"template"`
	CustomText          string          `json:"customText,omitempty"`
	HasWatermark        bool            `json:"hasWatermark"`
	Resolution          string          `json:"resolution"`
	AspectRatio         string          `json:"aspectRatio"`
	Username            string          `json:"username"`
	ProfileScreenshotID string          `json:"profileScreenshotId,omitempty"`
}

// RenderResult is a successful render response. Duration and FileSize
// are opaque pass-through values; nothing recomputes them locally.
type RenderResult struct {
	VideoID      string
	VideoURL     string
	ThumbnailURL string
	Duration     float64
	FileSize     int64
}
