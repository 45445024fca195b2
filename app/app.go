package app

import (
	"fmt"
	"log"
	"os"

	"wardrobe-reel/app/controller"
	"wardrobe-reel/app/router"
	"wardrobe-reel/db"
	"wardrobe-reel/repository"
	"wardrobe-reel/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	scrapeBase := os.Getenv("SCRAPE_API_URL")
	renderBase := os.Getenv("RENDER_API_URL")
	if scrapeBase == "" || renderBase == "" {
		return fmt.Errorf("SCRAPE_API_URL and RENDER_API_URL environment variables are required")
	}
	// The API key is optional: without it the header is simply omitted
	apiKey := os.Getenv("VIDEO_API_KEY")

	// Durable storage is best-effort by design; without credentials the
	// orchestrator keeps the render service's own URLs.
	var storage service.StorageServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	rootFolderID := os.Getenv("DRIVE_ROOT_FOLDER_ID")
	if credentialsPath != "" && rootFolderID != "" {
		storageService, err := service.NewStorageService(credentialsPath, rootFolderID)
		if err != nil {
			return err
		}
		storage = storageService
	} else {
		log.Printf("⚠️  Durable storage not configured (GOOGLE_APPLICATION_CREDENTIALS / DRIVE_ROOT_FOLDER_ID missing)")
	}

	// Initialize repositories
	videoRepo := repository.NewVideoRepository()
	subscriptionRepo := repository.NewSubscriptionRepository()
	creditRepo := repository.NewCreditRepository()
	analyticsRepo := repository.NewAnalyticsRepository()

	// Initialize services
	scrapeService := service.NewScrapeService(scrapeBase, apiKey)
	screenshotService := service.NewScreenshotService()
	renderService := service.NewRenderService(renderBase, apiKey)
	entitlementService := service.NewEntitlementService(subscriptionRepo, creditRepo, analyticsRepo)
	sessionService := service.NewSessionService()
	generationService := service.NewGenerationService(renderService, storage, entitlementService, videoRepo)

	// Create controllers
	controllers := &router.Controllers{
		Scrape:      controller.NewScrapeController(scrapeService, screenshotService, entitlementService, sessionService),
		Session:     controller.NewSessionController(sessionService),
		Generation:  controller.NewGenerationController(generationService, sessionService),
		Video:       controller.NewVideoController(videoRepo),
		Music:       controller.NewMusicController(renderService),
		Entitlement: controller.NewEntitlementController(entitlementService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
