package models

import "time"

// WardrobeItem represents a single listed article from a scraped wardrobe
type WardrobeItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
	Brand    string `json:"brand,omitempty"`
	Size     string `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
}

// WardrobeUserInfo carries optional profile metadata returned by the scrape service
type WardrobeUserInfo struct {
	ProfilePicture string  `json:"profilePicture,omitempty"`
	ItemCount      int     `json:"itemCount,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	Location       string  `json:"location,omitempty"`
}

// WardrobeSnapshot is the result of one scrape of a wardrobe URL.
// It is immutable once fetched; a new scrape replaces it wholesale.
// Items are uniquely keyed by ID.
type WardrobeSnapshot struct {
	Username  string            `json:"username"`
	UserID    string            `json:"userId"`
	UserInfo  *WardrobeUserInfo `json:"userInfo,omitempty"`
	Items     []WardrobeItem    `json:"items"`
	ScrapedAt time.Time         `json:"scrapedAt"`
}

// Item returns the item with the given id, if present in the snapshot
func (s *WardrobeSnapshot) Item(id string) (WardrobeItem, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return WardrobeItem{}, false
}

// ItemIDs returns the item ids in the snapshot's natural order
func (s *WardrobeSnapshot) ItemIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ProfileScreenshot is a captured image of the wardrobe profile page.
// Capture is optional and best-effort; a missing screenshot never blocks generation.
type ProfileScreenshot struct {
	ID     string `json:"id"`
	Data   []byte `json:"-"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
