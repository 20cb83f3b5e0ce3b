// Package reorder turns drag-and-drop gestures over a list of ids into
// permutations. The gesture source (keyboard, mouse, synthetic test events)
// only has to produce a DropEvent.
package reorder

// DropEvent describes the end of a drag. OverID is empty when the item was
// released outside any drop target.
type DropEvent struct {
	ActiveID string
	OverID   string
}

// Sorter computes the new order for a drop. The returned permutation lists
// old indices in their new positions: next[i] = items[perm[i]]. ok is false
// when the drop leaves the order unchanged.
type Sorter interface {
	Reorder(ids []string, ev DropEvent) (perm []int, ok bool)
}

// ArrayMove moves the dragged item to the drop target's index, shifting the
// items in between by one
type ArrayMove struct{}

// Reorder implements Sorter
func (ArrayMove) Reorder(ids []string, ev DropEvent) ([]int, bool) {
	if ev.OverID == "" || ev.ActiveID == ev.OverID {
		return nil, false
	}
	from, to := indexOf(ids, ev.ActiveID), indexOf(ids, ev.OverID)
	if from < 0 || to < 0 {
		return nil, false
	}
	return MovePermutation(len(ids), from, to), true
}

// MovePermutation returns the permutation of n items that moves from to to
func MovePermutation(n, from, to int) []int {
	perm := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != from {
			perm = append(perm, i)
		}
	}
	// Insert from at position to
	perm = append(perm, 0)
	copy(perm[to+1:], perm[to:])
	perm[to] = from
	return perm
}

// Apply builds the reordered slice. perm must be a permutation of
// 0..len(items)-1.
func Apply[T any](items []T, perm []int) []T {
	out := make([]T, len(perm))
	for i, p := range perm {
		out[i] = items[p]
	}
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
