package controller

import (
	"net/http"

	"wardrobe-reel/service"
)

// EntitlementController handles HTTP requests for the generation allowance
type EntitlementController struct {
	entitlements service.EntitlementServiceInterface
}

// NewEntitlementController creates a new EntitlementController
func NewEntitlementController(entitlements service.EntitlementServiceInterface) *EntitlementController {
	return &EntitlementController{entitlements: entitlements}
}

// GetEntitlement handles GET /api/entitlement
// The UI gates the generate action on remaining/canGenerate before a
// job is ever submitted.
func (c *EntitlementController) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	ent, err := c.entitlements.Entitlement(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load entitlement")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscription": ent.Subscription,
		"bonusCredits": ent.BonusCredits,
		"remaining":    ent.Remaining(),
		"canGenerate":  ent.CanGenerate(),
	})
}
