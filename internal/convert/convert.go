// Package convert switches a recipe list between its two representations:
// a flat list ("Use Simple List") and sections ("Organize into Sections").
//
// These functions are the only way a Layout changes variant. They never
// alias items between the old and new layout, and ids and relative order
// always survive a round trip; only positions are renumbered.
package convert

import (
	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
)

// ToSectioned wraps every item of a flat layout into one new section with
// order 0, a generated id and the given name (trimmed). A sectioned layout
// is returned as a deep copy.
//
// Wrapping an empty flat list yields one section flagged Empty.
func ToSectioned[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, name string) recipe.Layout[T] {
	if l.Mode() == recipe.ModeSectioned {
		return recipe.Sectioned(cloneSections[T, P](l.Sections()))
	}

	items := recipe.CloneItems[T, P](l.Items())
	if items == nil {
		items = []T{}
	}
	position.Renumber[T, P](items)

	sec := recipe.Section[T]{
		ID:    gen.Generate(),
		Name:  recipe.CleanName(name),
		Order: recipe.Pos(0),
		Items: items,
		Empty: len(items) == 0,
	}
	return recipe.Sectioned([]recipe.Section[T]{sec})
}

// ToFlat concatenates all sections' items in (section order, item position)
// order, discarding the sections, and renumbers the result. A flat layout
// is returned as a deep copy.
//
// The result is never empty: if there is nothing to keep, one blank
// placeholder item with a generated id is returned so the edit form still
// has a row to type into.
func ToFlat[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator) recipe.Layout[T] {
	var items []T
	if l.Mode() == recipe.ModeFlat {
		items = recipe.CloneItems[T, P](l.Items())
	} else {
		for _, sec := range position.SortedByRank(l.Sections()) {
			for _, it := range position.SortedByRank[T, P](sec.Items) {
				items = append(items, P(&it).Clone())
			}
		}
	}

	if len(items) == 0 {
		items = []T{Placeholder[T, P](gen)}
	}
	position.Renumber[T, P](items)
	return recipe.Flat(items)
}

// Toggle flips a layout to the other representation.
func Toggle[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, sectionName string) recipe.Layout[T] {
	if l.Mode() == recipe.ModeSectioned {
		return ToFlat[T, P](l, gen)
	}
	return ToSectioned[T, P](l, gen, sectionName)
}

// Placeholder returns a blank item with a fresh id at position 0.
func Placeholder[T any, P recipe.Item[T]](gen recipe.IDGenerator) T {
	var blank T
	P(&blank).SetKey(gen.Generate())
	P(&blank).SetSlot(0)
	return blank
}

func cloneSections[T any, P recipe.Item[T]](sections []recipe.Section[T]) []recipe.Section[T] {
	out := make([]recipe.Section[T], len(sections))
	for i, sec := range sections {
		out[i] = recipe.CloneSection[T, P](sec)
	}
	return out
}
