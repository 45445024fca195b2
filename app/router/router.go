package router

import (
	"net/http"

	"wardrobe-reel/app/controller"
)

type Controllers struct {
	Scrape      *controller.ScrapeController
	Session     *controller.SessionController
	Generation  *controller.GenerationController
	Video       *controller.VideoController
	Music       *controller.MusicController
	Entitlement *controller.EntitlementController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Wardrobe scraping
	http.HandleFunc("/api/wardrobe/scrape", controllers.Scrape.ScrapeWardrobe)

	// Session state
	http.HandleFunc("/api/session", controllers.Session.GetSession)
	http.HandleFunc("/api/session/reset", controllers.Session.ResetSession)
	http.HandleFunc("/api/session/config", controllers.Session.UpdateConfig)

	// Selection mutations
	http.HandleFunc("/api/session/selection/toggle", controllers.Session.ToggleItem)
	http.HandleFunc("/api/session/selection/remove", controllers.Session.RemoveItem)
	http.HandleFunc("/api/session/selection/select-all", controllers.Session.SelectAll)
	http.HandleFunc("/api/session/selection/clear", controllers.Session.DeselectAll)
	http.HandleFunc("/api/session/selection/reorder", controllers.Session.Reorder)

	// Generation
	http.HandleFunc("/api/generate", controllers.Generation.Generate)
	http.HandleFunc("/api/generate/status", controllers.Generation.GetStatus)

	// Video history - list on the bare path, delete on /api/videos/:id
	http.HandleFunc("/api/videos", controllers.Video.ListVideos)
	http.HandleFunc("/api/videos/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Video.DeleteVideo(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Music catalog
	http.HandleFunc("/api/music", controllers.Music.ListTracks)

	// Entitlement
	http.HandleFunc("/api/entitlement", controllers.Entitlement.GetEntitlement)
}
