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
	"wardrobe-reel/utils"
)

const scrapeTimeout = 90 * time.Second

// ScrapeService fetches wardrobe snapshots from the external scraping API
// Implements ScrapeServiceInterface
type ScrapeService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewScrapeService creates a new ScrapeService.
// apiKey may be empty; the header is simply omitted in that case.
func NewScrapeService(baseURL string, apiKey string) *ScrapeService {
	return &ScrapeService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

// Ensure ScrapeService implements ScrapeServiceInterface
var _ ScrapeServiceInterface = (*ScrapeService)(nil)

type scrapeRequest struct {
	WardrobeURL string `json:"wardrobeUrl"`
}

// scrapeResponse covers both the snapshot payload and the error envelope
type scrapeResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	models.WardrobeSnapshot
}

// Scrape validates the wardrobe URL and fetches a snapshot of its items.
// Validation failures return ErrInvalidWardrobeURL without any network
// call; upstream and network failures come back as *UpstreamError.
func (s *ScrapeService) Scrape(ctx context.Context, wardrobeURL string) (*models.WardrobeSnapshot, error) {
	if !utils.IsWardrobeURL(wardrobeURL) {
		return nil, ErrInvalidWardrobeURL
	}

	ctx, cancel := context.WithTimeout(ctx, scrapeTimeout)
	defer cancel()

	body, err := json.Marshal(scrapeRequest{WardrobeURL: wardrobeURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/scrape-wardrobe", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	log.Printf("🔎 Scraping wardrobe: %s", wardrobeURL)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, upstreamFailure("scrape", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstreamFailure("scrape", err)
	}

	var parsed scrapeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, upstreamRejection("scrape", "the wardrobe could not be read, please try again later")
	}

	if resp.StatusCode != http.StatusOK || (parsed.Success != nil && !*parsed.Success) {
		log.Printf("❌ Scrape failed (status=%d): %s", resp.StatusCode, parsed.Error)
		return nil, upstreamRejection("scrape", parsed.Error)
	}

	snapshot := parsed.WardrobeSnapshot
	if snapshot.ScrapedAt.IsZero() {
		snapshot.ScrapedAt = time.Now()
	}

	log.Printf("✓ Scraped %d items for @%s", len(snapshot.Items), snapshot.Username)
	return &snapshot, nil
}
