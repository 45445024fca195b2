package controller

import (
	"net/http"
	"strings"

	"wardrobe-reel/repository"
)

// VideoController handles HTTP requests for the video history
type VideoController struct {
	videos repository.VideoRepositoryInterface
}

// NewVideoController creates a new VideoController
func NewVideoController(videos repository.VideoRepositoryInterface) *VideoController {
	return &VideoController{videos: videos}
}

// ListVideos handles GET /api/videos
// Returns the user's history, newest first.
func (c *VideoController) ListVideos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	records, err := c.videos.ListByUser(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list videos")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"videos":  records,
	})
}

// DeleteVideo handles DELETE /api/videos/{id}
// Only the owning user can delete a record.
func (c *VideoController) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	recordID := strings.TrimPrefix(r.URL.Path, "/api/videos/")
	if recordID == "" || strings.Contains(recordID, "/") {
		writeError(w, http.StatusBadRequest, "video id is required")
		return
	}

	if err := c.videos.Delete(r.Context(), recordID, uid); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
