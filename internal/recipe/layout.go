package recipe

// Mode names which representation a Layout currently holds.
type Mode string

const (
	ModeFlat      Mode = "flat"
	ModeSectioned Mode = "sectioned"
)

// Layout is the edit-state list of one item kind: either Flat(items) or
// Sectioned(sections). The zero value is an empty flat layout.
//
// The variant of an existing layout only changes through the convert
// package; WithItems and WithSections keep the current variant.
type Layout[T any] struct {
	sectioned bool
	items     []T
	sections  []Section[T]
}

// Flat builds a flat layout.
func Flat[T any](items []T) Layout[T] {
	return Layout[T]{items: items}
}

// Sectioned builds a sectioned layout.
func Sectioned[T any](sections []Section[T]) Layout[T] {
	return Layout[T]{sectioned: true, sections: sections}
}

// Mode returns the active representation.
func (l Layout[T]) Mode() Mode {
	if l.sectioned {
		return ModeSectioned
	}
	return ModeFlat
}

// Items returns the flat items, or nil for a sectioned layout.
func (l Layout[T]) Items() []T {
	if l.sectioned {
		return nil
	}
	return l.items
}

// Sections returns the sections, or nil for a flat layout.
func (l Layout[T]) Sections() []Section[T] {
	if !l.sectioned {
		return nil
	}
	return l.sections
}

// Len counts items across the whole layout.
func (l Layout[T]) Len() int {
	if !l.sectioned {
		return len(l.items)
	}
	n := 0
	for _, s := range l.sections {
		n += len(s.Items)
	}
	return n
}

// WithItems replaces the items of a flat layout.
func (l Layout[T]) WithItems(items []T) (Layout[T], error) {
	if l.sectioned {
		return l, ErrWrongMode
	}
	return Flat(items), nil
}

// WithSections replaces the sections of a sectioned layout.
func (l Layout[T]) WithSections(sections []Section[T]) (Layout[T], error) {
	if !l.sectioned {
		return l, ErrWrongMode
	}
	return Sectioned(sections), nil
}
