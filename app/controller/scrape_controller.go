package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wardrobe-reel/service"
)

// ScrapeController handles HTTP requests for wardrobe acquisition
type ScrapeController struct {
	scrapeService     service.ScrapeServiceInterface
	screenshotService service.ScreenshotServiceInterface
	entitlements      service.EntitlementServiceInterface
	sessions          *service.SessionService
}

// NewScrapeController creates a new ScrapeController
func NewScrapeController(
	scrapeService service.ScrapeServiceInterface,
	screenshotService service.ScreenshotServiceInterface,
	entitlements service.EntitlementServiceInterface,
	sessions *service.SessionService,
) *ScrapeController {
	return &ScrapeController{
		scrapeService:     scrapeService,
		screenshotService: screenshotService,
		entitlements:      entitlements,
		sessions:          sessions,
	}
}

type scrapeWardrobeRequest struct {
	WardrobeURL string `json:"wardrobeUrl"`
	MaxArticles int    `json:"maxArticles,omitempty"`
}

// ScrapeWardrobe handles POST /api/wardrobe/scrape
// Fetches a snapshot of the wardrobe and stores it on the session.
// The profile screenshot is captured in the background: its failure
// or slowness never blocks entering the selection flow.
func (c *ScrapeController) ScrapeWardrobe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	var req scrapeWardrobeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := c.scrapeService.Scrape(r.Context(), req.WardrobeURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWardrobeURL) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			writeError(w, http.StatusBadGateway, upstream.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to scrape wardrobe")
		return
	}

	ent, err := c.entitlements.Entitlement(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load subscription")
		return
	}

	sid := sessionID(r)
	scrapeToken := c.sessions.SetSnapshot(sid, ent.Subscription.Plan, req.MaxArticles, snapshot)

	// Best-effort capture, concurrent with the response. The request
	// context ends with this handler, so the capture gets its own. The
	// scrape token ties the capture to this scrape: if the session is
	// re-scraped before the capture lands, it is dropped.
	go func() {
		shot, err := c.screenshotService.CaptureProfileScreenshot(context.Background(), req.WardrobeURL)
		if err != nil {
			log.Printf("⚠️  Profile screenshot capture failed: %v", err)
			return
		}
		c.sessions.SetScreenshot(sid, scrapeToken, shot)
	}()

	writeJSON(w, http.StatusOK, snapshot)
}
