package models

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i+1)
	}
	return ids
}

func TestSelectionToggleRespectsLimit(t *testing.T) {
	sel := NewSelection(PlanFree.MaxArticles())

	// Free plan: selecting 6 distinct items keeps exactly 5
	for i, id := range itemIDs(6) {
		selected := sel.Toggle(id)
		if i < 5 {
			assert.True(t, selected, "item %d should be selected", i+1)
		} else {
			assert.False(t, selected, "6th item must be rejected as a no-op")
		}
	}

	require.Equal(t, 5, sel.Size())
	assert.False(t, sel.Contains("item-6"))
}

func TestSelectionSizeNeverExceedsPlanLimit(t *testing.T) {
	plans := map[Plan]int{PlanFree: 5, PlanPro: 10, PlanBusiness: 20}
	ids := itemIDs(30)

	for plan, limit := range plans {
		t.Run(string(plan), func(t *testing.T) {
			sel := NewSelection(plan.MaxArticles())

			// Arbitrary mixed sequence of operations
			for i, id := range ids {
				sel.Toggle(id)
				if i%3 == 0 {
					sel.Toggle(id) // deselect some again
				}
				assert.LessOrEqual(t, sel.Size(), limit)
			}
			sel.SelectAll(ids)
			assert.LessOrEqual(t, sel.Size(), limit)
			assert.Equal(t, limit, sel.Size())
		})
	}
}

func TestSelectionToggleRemovesSelected(t *testing.T) {
	sel := NewSelection(5)
	sel.Toggle("a")
	sel.Toggle("b")

	assert.False(t, sel.Toggle("a"))
	assert.Equal(t, []string{"b"}, sel.IDs())
}

func TestSelectionOrderIsInsertionOrder(t *testing.T) {
	sel := NewSelection(10)
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")

	// Deselecting and reselecting moves the item to the end
	sel.Toggle("b")
	sel.Toggle("b")
	assert.Equal(t, []string{"a", "c", "b"}, sel.IDs())

	// Newly selected items append after existing ones
	sel.Toggle("d")
	assert.Equal(t, []string{"a", "c", "b", "d"}, sel.IDs())
}

func TestSelectAllFillsInNaturalOrder(t *testing.T) {
	sel := NewSelection(5)
	sel.Toggle("item-3")

	sel.SelectAll(itemIDs(8))

	require.Equal(t, 5, sel.Size())
	// Already-selected item keeps its position; the rest fill in order
	assert.Equal(t, []string{"item-3", "item-1", "item-2", "item-4", "item-5"}, sel.IDs())
}

func TestDeselectAllIsIdempotent(t *testing.T) {
	sel := NewSelection(5)
	sel.SelectAll(itemIDs(5))

	sel.DeselectAll()
	first := sel.IDs()
	sel.DeselectAll()
	second := sel.IDs()

	assert.Empty(t, first)
	assert.Equal(t, first, second)
}

func TestReorderIsStructurePreserving(t *testing.T) {
	sel := NewSelection(5)
	sel.SelectAll(itemIDs(4))
	before := sel.IDs()

	require.NoError(t, sel.Reorder([]string{"item-3", "item-1", "item-4", "item-2"}))
	after := sel.IDs()

	assert.Equal(t, []string{"item-3", "item-1", "item-4", "item-2"}, after)

	// Same multiset of ids before and after
	sort.Strings(before)
	sorted := append([]string(nil), after...)
	sort.Strings(sorted)
	assert.Equal(t, before, sorted)
}

func TestReorderRejectsNonPermutations(t *testing.T) {
	sel := NewSelection(5)
	sel.SelectAll(itemIDs(3))
	original := sel.IDs()

	tests := []struct {
		name string
		seq  []string
	}{
		{"missing id", []string{"item-1", "item-2"}},
		{"extra id", []string{"item-1", "item-2", "item-3", "item-4"}},
		{"unknown id", []string{"item-1", "item-2", "item-9"}},
		{"duplicate id", []string{"item-1", "item-2", "item-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, sel.Reorder(tt.seq))
			assert.Equal(t, original, sel.IDs(), "failed reorder must not change state")
		})
	}
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	sel := NewSelection(5)
	sel.Toggle("a")

	sel.Remove("missing")
	assert.Equal(t, []string{"a"}, sel.IDs())

	sel.Remove("a")
	assert.Empty(t, sel.IDs())
}
