package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"wardrobe-reel/models"
)

const (
	renderTimeout = 5 * time.Minute
	assetTimeout  = 2 * time.Minute
	musicTimeout  = 10 * time.Second
)

// RenderService is the client for the external video generation API
// Implements RenderServiceInterface
type RenderService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRenderService creates a new RenderService.
// apiKey may be empty; the header is simply omitted in that case.
func NewRenderService(baseURL string, apiKey string) *RenderService {
	return &RenderService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

type renderResponse struct {
	Success      bool    `json:"success"`
	Error        string  `json:"error,omitempty"`
	VideoID      string  `json:"videoId"`
	VideoURL     string  `json:"videoUrl"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Duration     float64 `json:"duration"`
	FileSize     int64   `json:"fileSize"`
}

type musicResponse struct {
	Success bool                `json:"success"`
	Tracks  []models.MusicTrack `json:"tracks"`
}

func (s *RenderService) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}
}

// GenerateVideo submits one render job and waits for the result.
// Failures come back as *UpstreamError with a user-facing message;
// connectivity problems and timeouts are distinguished from failures
// the render service itself reported.
func (s *RenderService) GenerateVideo(ctx context.Context, renderReq *RenderRequest) (*RenderResult, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	body, err := json.Marshal(renderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/video/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	s.setHeaders(req)

	log.Printf("🎬 Submitting render job: %d articles, template=%s", len(renderReq.Articles), renderReq.Template)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, upstreamFailure("render", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstreamFailure("render", err)
	}

	var parsed renderResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, upstreamRejection("render", "video generation failed, please try again later")
	}

	if resp.StatusCode != http.StatusOK || !parsed.Success {
		log.Printf("❌ Render failed (status=%d): %s", resp.StatusCode, parsed.Error)
		return nil, upstreamRejection("render", parsed.Error)
	}

	log.Printf("✓ Render completed: videoId=%s duration=%.1fs size=%d", parsed.VideoID, parsed.Duration, parsed.FileSize)

	return &RenderResult{
		VideoID:      parsed.VideoID,
		VideoURL:     parsed.VideoURL,
		ThumbnailURL: parsed.ThumbnailURL,
		Duration:     parsed.Duration,
		FileSize:     parsed.FileSize,
	}, nil
}

// FetchAsset downloads a finished asset (video or thumbnail) as raw bytes
func (s *RenderService) FetchAsset(ctx context.Context, assetURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, assetTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, upstreamFailure("render", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset body: %w", err)
	}
	return data, nil
}

// DownloadURL builds the canonical download URL for a rendered video
func (s *RenderService) DownloadURL(videoID string) string {
	return fmt.Sprintf("%s/api/video/%s/download", s.baseURL, videoID)
}

// ListMusicTracks fetches the music catalog. Any failure degrades to a
// single default track instead of failing the caller: losing the
// catalog must not lose the configuration surface.
func (s *RenderService) ListMusicTracks(ctx context.Context) []models.MusicTrack {
	fallback := []models.MusicTrack{models.DefaultMusicTrack}

	ctx, cancel := context.WithTimeout(ctx, musicTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/video/music", nil)
	if err != nil {
		return fallback
	}
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("⚠️  Music catalog unavailable, using default track: %v", err)
		return fallback
	}
	defer resp.Body.Close()

	var parsed musicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || !parsed.Success || len(parsed.Tracks) == 0 {
		log.Printf("⚠️  Music catalog response unusable, using default track")
		return fallback
	}

	return parsed.Tracks
}
