package controller

import (
	"encoding/json"
	"net/http"

	"wardrobe-reel/models"
	"wardrobe-reel/service"
)

// SessionController handles HTTP requests for selection and configuration state
type SessionController struct {
	sessions *service.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions *service.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

type itemRequest struct {
	ItemID string `json:"itemId"`
}

type reorderRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// sessionView is the read model of a session returned to clients
type sessionView struct {
	SelectedIDs    []string                 `json:"selectedIds"`
	SelectionLimit int                      `json:"selectionLimit"`
	Config         models.VideoConfig       `json:"config"`
	Job            models.JobState          `json:"job"`
	Loading        bool                     `json:"loading"`
	Snapshot       *models.WardrobeSnapshot `json:"snapshot,omitempty"`
}

// GetSession handles GET /api/session
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := c.sessions.Get(sessionID(r))
	if sess == nil || sess.Snapshot == nil {
		writeError(w, http.StatusNotFound, "no wardrobe loaded")
		return
	}

	job := sess.Job.State()
	writeJSON(w, http.StatusOK, sessionView{
		SelectedIDs:    sess.Selection.IDs(),
		SelectionLimit: sess.Selection.Limit(),
		Config:         sess.Config,
		Job:            job,
		Loading:        job.Status.Busy(),
		Snapshot:       sess.Snapshot,
	})
}

// ToggleItem handles POST /api/session/selection/toggle
func (c *SessionController) ToggleItem(w http.ResponseWriter, r *http.Request) {
	c.selectionMutation(w, r, func(sid string, req itemRequest) error {
		return c.sessions.ToggleItem(sid, req.ItemID)
	})
}

// RemoveItem handles POST /api/session/selection/remove
func (c *SessionController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c.selectionMutation(w, r, func(sid string, req itemRequest) error {
		return c.sessions.RemoveItem(sid, req.ItemID)
	})
}

func (c *SessionController) selectionMutation(w http.ResponseWriter, r *http.Request, apply func(string, itemRequest) error) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	if err := apply(sessionID(r), req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.respondSelection(w, r)
}

// SelectAll handles POST /api/session/selection/select-all
func (c *SessionController) SelectAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := c.sessions.SelectAll(sessionID(r)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.respondSelection(w, r)
}

// DeselectAll handles POST /api/session/selection/clear
func (c *SessionController) DeselectAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := c.sessions.DeselectAll(sessionID(r)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.respondSelection(w, r)
}

// Reorder handles POST /api/session/selection/reorder
func (c *SessionController) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.sessions.Reorder(sessionID(r), req.ItemIDs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.respondSelection(w, r)
}

// UpdateConfig handles PUT /api/session/config
func (c *SessionController) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var config models.VideoConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sid := sessionID(r)
	if err := c.sessions.UpdateConfig(sid, config); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := c.sessions.Get(sid)
	writeJSON(w, http.StatusOK, sess.Config)
}

// ResetSession handles POST /api/session/reset
// Mirrors navigating away: the job goes back to idle and the selection
// is cleared. An in-flight remote request is not cancelled.
func (c *SessionController) ResetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c.sessions.Reset(sessionID(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *SessionController) respondSelection(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Get(sessionID(r))
	if sess == nil {
		writeError(w, http.StatusNotFound, "no wardrobe loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"selectedIds":    sess.Selection.IDs(),
		"selectionLimit": sess.Selection.Limit(),
	})
}
