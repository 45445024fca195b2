package controller

import (
	"net/http"

	"wardrobe-reel/service"
)

// MusicController handles HTTP requests for the music catalog
type MusicController struct {
	render service.RenderServiceInterface
}

// NewMusicController creates a new MusicController
func NewMusicController(render service.RenderServiceInterface) *MusicController {
	return &MusicController{render: render}
}

// ListTracks handles GET /api/music
// Never fails: when the upstream catalog is unavailable the response
// degrades to a single default track.
func (c *MusicController) ListTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tracks := c.render.ListMusicTracks(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tracks":  tracks,
	})
}
