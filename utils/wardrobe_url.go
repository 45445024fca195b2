package utils

import "strings"

// Markers a wardrobe profile URL must carry. The scrape service only
// understands member profile pages, so anything else is rejected before
// a network call is made.
const (
	wardrobeHostMarker    = "vinted."
	wardrobeProfileMarker = "/member/"
)

// IsWardrobeURL reports whether the URL looks like a scrapeable wardrobe
// profile page: it must contain both the host marker and the profile
// path marker.
func IsWardrobeURL(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return false
	}
	return strings.Contains(lower, wardrobeHostMarker) &&
		strings.Contains(lower, wardrobeProfileMarker)
}
