package controller

import (
	"errors"
	"net/http"

	"wardrobe-reel/service"
)

// GenerationController handles HTTP requests for video generation
type GenerationController struct {
	generation service.GenerationServiceInterface
	sessions   *service.SessionService
}

// NewGenerationController creates a new GenerationController
func NewGenerationController(generation service.GenerationServiceInterface, sessions *service.SessionService) *GenerationController {
	return &GenerationController{
		generation: generation,
		sessions:   sessions,
	}
}

// Generate handles POST /api/generate
// Runs the full pipeline synchronously and returns the finished job.
// Submissions while a job is in flight are rejected, which is what
// keeps one generation per session.
func (c *GenerationController) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	job, input, err := c.sessions.BeginGeneration(sessionID(r), uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenerationInProgress):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEmptySelection):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if err := c.generation.Generate(r.Context(), job, input); err != nil {
		switch {
		case errors.Is(err, service.ErrNotEntitled):
			writeError(w, http.StatusPaymentRequired, err.Error())
		default:
			// The job carries the user-facing message; return it with the state
			writeJSON(w, http.StatusBadGateway, job.State())
		}
		return
	}

	writeJSON(w, http.StatusOK, job.State())
}

// GetStatus handles GET /api/generate/status
// Exposes the current job so clients can poll while a generation runs.
func (c *GenerationController) GetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := c.sessions.Get(sessionID(r))
	if sess == nil {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	writeJSON(w, http.StatusOK, sess.Job.State())
}
