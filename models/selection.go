package models

import "fmt"

// Selection is an ordered set of item ids chosen for a video.
// It holds no duplicates and never grows past its limit. Order is
// insertion order: newly selected items append after existing ones,
// and only an explicit Reorder changes relative positions.
//
// Selection is not goroutine-safe; callers synchronize access.
type Selection struct {
	ids   []string
	limit int
}

// NewSelection creates an empty selection capped at limit items
func NewSelection(limit int) *Selection {
	if limit < 0 {
		limit = 0
	}
	return &Selection{limit: limit}
}

// Limit returns the maximum number of items the selection can hold
func (s *Selection) Limit() int {
	return s.limit
}

// Size returns the number of selected items
func (s *Selection) Size() int {
	return len(s.ids)
}

// Contains reports whether the item is currently selected
func (s *Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in order
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle selects the item if absent and deselects it if present.
// Selecting past the limit is a no-op, not an error: the item is
// simply left unselected. Returns true if the item is selected
// after the call.
func (s *Selection) Toggle(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}
	if len(s.ids) >= s.limit {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deselects the item if present; no-op otherwise
func (s *Selection) Remove(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// SelectAll fills the selection up to its limit from the given ids
// in their natural order, keeping already-selected items in place.
func (s *Selection) SelectAll(ids []string) {
	for _, id := range ids {
		if len(s.ids) >= s.limit {
			return
		}
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
}

// DeselectAll empties the selection. Idempotent.
func (s *Selection) DeselectAll() {
	s.ids = s.ids[:0]
}

// Reorder replaces the ordering with seq, which must be an exact
// permutation of the currently selected ids. Extra or missing ids
// indicate a caller bug and are rejected without changing state.
func (s *Selection) Reorder(seq []string) error {
	if len(seq) != len(s.ids) {
		return fmt.Errorf("reorder: expected %d ids, got %d", len(s.ids), len(seq))
	}
	seen := make(map[string]bool, len(seq))
	for _, id := range seq {
		if seen[id] {
			return fmt.Errorf("reorder: duplicate id %q", id)
		}
		if !s.Contains(id) {
			return fmt.Errorf("reorder: id %q is not selected", id)
		}
		seen[id] = true
	}
	s.ids = append(s.ids[:0], seq...)
	return nil
}
