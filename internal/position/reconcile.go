package position

import "sort"

// Ranked is satisfied by pointers to scope elements.
// SetSlot must not write through a pointer shared with the original value.
type Ranked[T any] interface {
	*T
	Key() string
	Slot() (int, bool)
	SetSlot(n int)
}

// ReorderWithinScope moves the element at from to index to and renumbers
// the scope. Both indices must lie in [0, len-1]. Moving an element onto
// itself returns an unchanged copy. An empty scope returns empty.
func ReorderWithinScope[T any, P Ranked[T]](items []T, from, to int) ([]T, error) {
	n := len(items)
	if n == 0 {
		return []T{}, nil
	}
	if err := checkIndex("reorder", "from", from, n); err != nil {
		return nil, err
	}
	if err := checkIndex("reorder", "to", to, n); err != nil {
		return nil, err
	}

	out := make([]T, n)
	copy(out, items)
	if from == to {
		return out, nil
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved

	Renumber[T, P](out)
	return out, nil
}

// MoveBetweenScopes removes the element at sourceIndex from source and
// inserts it at destIndex in dest. sourceIndex is range-checked; destIndex
// uses insertion semantics and is clamped to [0, len(dest)].
//
// Both returned scopes are renumbered independently from zero. Neither
// input is modified, so a failed move leaves no half-moved state.
func MoveBetweenScopes[T any, P Ranked[T]](source, dest []T, sourceIndex, destIndex int) ([]T, []T, error) {
	if err := checkIndex("move", "source", sourceIndex, len(source)); err != nil {
		return nil, nil, err
	}
	destIndex = clamp(destIndex, 0, len(dest))

	moved := source[sourceIndex]

	newSource := make([]T, 0, len(source)-1)
	newSource = append(newSource, source[:sourceIndex]...)
	newSource = append(newSource, source[sourceIndex+1:]...)

	newDest := make([]T, 0, len(dest)+1)
	newDest = append(newDest, dest[:destIndex]...)
	newDest = append(newDest, moved)
	newDest = append(newDest, dest[destIndex:]...)

	Renumber[T, P](newSource)
	Renumber[T, P](newDest)
	return newSource, newDest, nil
}

// InsertAt returns a copy of items with item inserted at index (clamped)
// and the scope renumbered.
func InsertAt[T any, P Ranked[T]](items []T, item T, index int) []T {
	index = clamp(index, 0, len(items))
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	out = append(out, items[index:]...)
	Renumber[T, P](out)
	return out
}

// RemoveAt returns a copy of items without the element at index, with the
// survivors renumbered.
func RemoveAt[T any, P Ranked[T]](items []T, index int) ([]T, error) {
	if err := checkIndex("remove", "index", index, len(items)); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	Renumber[T, P](out)
	return out, nil
}

// IndexOf returns the index of the element with the given key, or -1.
func IndexOf[T any, P Ranked[T]](items []T, key string) int {
	for i := range items {
		if P(&items[i]).Key() == key {
			return i
		}
	}
	return -1
}

// AutoCorrectPositions assigns ranks 0..n-1 following the slice order of
// the input. Stored ranks are ignored, so duplicates, negatives and gaps
// are all repaired without moving elements relative to one another.
func AutoCorrectPositions[T any, P Ranked[T]](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	Renumber[T, P](out)
	return out
}

// SortedByRank returns a copy of items stably sorted by stored rank.
// Elements without a rank sort after ranked ones, keeping slice order.
// Ranks themselves are left as stored.
func SortedByRank[T any, P Ranked[T]](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ri, oki := P(&out[i]).Slot()
		rj, okj := P(&out[j]).Slot()
		if oki != okj {
			return oki
		}
		return oki && ri < rj
	})
	return out
}

// Renumber sets each element's rank to its index, in place.
// Callers own the slice; use AutoCorrectPositions to leave input untouched.
func Renumber[T any, P Ranked[T]](items []T) {
	for i := range items {
		P(&items[i]).SetSlot(i)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
