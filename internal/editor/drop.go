package editor

import (
	"fmt"

	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
	"github.com/roach88/cookbook/internal/sections"
)

// List selects which of a recipe's two lists an operation targets.
type List string

const (
	Ingredients  List = "ingredients"
	Instructions List = "instructions"
)

// Scope identifiers used in drop events besides section ids.
const (
	// NoTarget marks a drag released outside any valid target.
	NoTarget = ""

	// FlatScope is the top-level list of a flat layout.
	FlatScope = "flat"

	// SectionList is the list of sections itself, for dragging whole
	// sections around.
	SectionList = "sections"
)

// DropEvent is what the drag-and-drop library reports on release.
type DropEvent struct {
	SourceIndex int    `json:"sourceIndex"`
	DestIndex   int    `json:"destIndex"`
	SourceScope string `json:"sourceScope"`
	DestScope   string `json:"destScope"`
}

// Cancelled reports whether the drop should be ignored.
func (e DropEvent) Cancelled() bool {
	return e.DestScope == NoTarget
}

// String implements fmt.Stringer for log lines.
func (e DropEvent) String() string {
	return fmt.Sprintf("%s[%d] -> %s[%d]", e.SourceScope, e.SourceIndex, e.DestScope, e.DestIndex)
}

// applyDrop computes the new layout for a drop. The input layout is not
// modified; on error it is returned unchanged.
func applyDrop[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, ev DropEvent) (recipe.Layout[T], error) {
	if ev.Cancelled() {
		return l, nil
	}

	if ev.SourceScope == SectionList || ev.DestScope == SectionList {
		if ev.SourceScope != ev.DestScope {
			return l, fmt.Errorf("drop %s: sections and items cannot be exchanged: %w", ev, ErrUnknownScope)
		}
		next, err := sectionEdit[T, P](l, gen, func(st *sections.Store[T, P]) error {
			return st.ReorderSections(ev.SourceIndex, ev.DestIndex)
		})
		if err != nil {
			return l, fmt.Errorf("drop %s: %w", ev, err)
		}
		return next, nil
	}

	if l.Mode() == recipe.ModeFlat {
		// a flat list has no sections, so any other scope is a mode mismatch
		if ev.SourceScope != FlatScope || ev.DestScope != FlatScope {
			return l, fmt.Errorf("drop %s in flat list: %w", ev, ErrWrongMode)
		}
		next, err := position.ReorderWithinScope[T, P](l.Items(), ev.SourceIndex, ev.DestIndex)
		if err != nil {
			return l, err
		}
		return l.WithItems(next)
	}

	if ev.SourceScope == FlatScope || ev.DestScope == FlatScope {
		return l, fmt.Errorf("drop %s in sectioned list: %w", ev, ErrWrongMode)
	}
	st := sections.New[T, P](l.Sections(), gen)
	if err := st.MoveItem(ev.SourceScope, ev.DestScope, ev.SourceIndex, ev.DestIndex); err != nil {
		if isSectionNotFound(err) {
			return l, fmt.Errorf("drop %s: %w", ev, ErrUnknownScope)
		}
		return l, err
	}
	return l.WithSections(st.Sections())
}
