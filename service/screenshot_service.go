package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"time"

	"wardrobe-reel/models"
	"wardrobe-reel/utils"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

const screenshotTimeout = 45 * time.Second

// ScreenshotService captures wardrobe profile pages with headless Chrome
// Implements ScreenshotServiceInterface
type ScreenshotService struct{}

// NewScreenshotService creates a new ScreenshotService
func NewScreenshotService() *ScreenshotService {
	return &ScreenshotService{}
}

// Ensure ScreenshotService implements ScreenshotServiceInterface
var _ ScreenshotServiceInterface = (*ScreenshotService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// CaptureProfileScreenshot navigates to the wardrobe profile page and
// captures the viewport as a PNG. It follows the same URL validation
// contract as Scrape. Callers treat failures as non-fatal: a missing
// screenshot never fails the wardrobe fetch.
func (s *ScreenshotService) CaptureProfileScreenshot(ctx context.Context, wardrobeURL string) (*models.ProfileScreenshot, error) {
	if !utils.IsWardrobeURL(wardrobeURL) {
		return nil, ErrInvalidWardrobeURL
	}

	ctx, cancel := context.WithTimeout(ctx, screenshotTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	log.Printf("📸 Capturing profile screenshot: %s", wardrobeURL)

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(1280, 800),
		chromedp.Navigate(wardrobeURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second), // Let images settle before the capture
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture profile screenshot: %w", err)
	}

	shot := &models.ProfileScreenshot{
		ID:   uuid.NewString(),
		Data: buf,
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(buf)); err == nil {
		shot.Width = cfg.Width
		shot.Height = cfg.Height
	}

	log.Printf("✓ Profile screenshot captured (%d bytes)", len(buf))
	return shot, nil
}
