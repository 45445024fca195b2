package controller

import (
	"encoding/json"
	"net/http"
)

// Identity is supplied by the auth layer in front of this service;
// the handlers only need the resolved ids.
const (
	headerUserID  = "X-User-ID"
	headerSession = "X-Session-ID"
)

func userID(r *http.Request) string {
	return r.Header.Get(headerUserID)
}

// sessionID falls back to the user id so single-tab clients work
// without minting session ids.
func sessionID(r *http.Request) string {
	if sid := r.Header.Get(headerSession); sid != "" {
		return sid
	}
	return userID(r)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
