// Package sections manages the section list of one item kind: adding,
// removing, renaming and reordering sections, and adding, removing and
// moving items inside and between them. Ranking is delegated to the
// position package, so every scope stays numbered 0..n-1.
//
// Each mutating method either applies completely or returns an error and
// leaves the store untouched.
package sections

import (
	"errors"
	"fmt"

	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
)

// Sentinel errors.
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrEmptyName       = errors.New("section name must not be empty")
)

// Store holds the sections of one item kind in edit state.
type Store[T any, P recipe.Item[T]] struct {
	sections []recipe.Section[T]
	gen      recipe.IDGenerator
}

// IngredientStore and InstructionStore are the two concrete stores.
type (
	IngredientStore  = Store[recipe.Ingredient, *recipe.Ingredient]
	InstructionStore = Store[recipe.Instruction, *recipe.Instruction]
)

// New wraps sections. The slice is copied; gen supplies ids for new
// sections and for items added without one. Sections that arrive without
// items are flagged Empty.
func New[T any, P recipe.Item[T]](sections []recipe.Section[T], gen recipe.IDGenerator) *Store[T, P] {
	own := make([]recipe.Section[T], len(sections))
	copy(own, sections)
	for i := range own {
		if len(own[i].Items) == 0 {
			own[i].Empty = true
		}
	}
	return &Store[T, P]{sections: own, gen: gen}
}

// Sections returns a copy of the section list in order.
func (s *Store[T, P]) Sections() []recipe.Section[T] {
	out := make([]recipe.Section[T], len(s.sections))
	copy(out, s.sections)
	return out
}

// Len returns the number of sections.
func (s *Store[T, P]) Len() int {
	return len(s.sections)
}

// Section looks a section up by id.
func (s *Store[T, P]) Section(id string) (recipe.Section[T], bool) {
	i := s.index(id)
	if i < 0 {
		return recipe.Section[T]{}, false
	}
	return s.sections[i], true
}

// AddSection appends a new, empty section named name.
// The new section is flagged Empty until its first item arrives.
func (s *Store[T, P]) AddSection(name string) (recipe.Section[T], error) {
	name = recipe.CleanName(name)
	if name == "" {
		return recipe.Section[T]{}, ErrEmptyName
	}
	sec := recipe.Section[T]{
		ID:    s.gen.Generate(),
		Name:  name,
		Order: recipe.Pos(len(s.sections)),
		Items: []T{},
		Empty: true,
	}
	s.sections = append(s.sections, sec)
	return sec, nil
}

// RemoveSection deletes a section and renumbers the rest.
func (s *Store[T, P]) RemoveSection(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("remove section %s: %w", id, ErrSectionNotFound)
	}
	next, err := position.RemoveAt(s.sections, i)
	if err != nil {
		return err
	}
	s.sections = next
	return nil
}

// RenameSection trims and sets a section's name. An empty result is
// rejected and the old name kept.
func (s *Store[T, P]) RenameSection(id, name string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("rename section %s: %w", id, ErrSectionNotFound)
	}
	name = recipe.CleanName(name)
	if name == "" {
		return fmt.Errorf("rename section %s: %w", id, ErrEmptyName)
	}
	s.sections = s.replace(i, func(sec *recipe.Section[T]) { sec.Name = name })
	return nil
}

// ReorderSections moves the section at from to index to.
func (s *Store[T, P]) ReorderSections(from, to int) error {
	next, err := position.ReorderWithinScope(s.sections, from, to)
	if err != nil {
		return err
	}
	s.sections = next
	return nil
}

// AddItem appends item to the end of a section. An item without an id is
// given one. Returns the stored item.
func (s *Store[T, P]) AddItem(sectionID string, item T) (T, error) {
	i := s.index(sectionID)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("add item to %s: %w", sectionID, ErrSectionNotFound)
	}
	item = P(&item).Clone()
	if P(&item).Key() == "" {
		P(&item).SetKey(s.gen.Generate())
	}
	items := position.InsertAt[T, P](s.sections[i].Items, item, len(s.sections[i].Items))
	s.sections = s.replace(i, func(sec *recipe.Section[T]) {
		sec.Items = items
		sec.Empty = false
	})
	return items[len(items)-1], nil
}

// RemoveItem deletes an item from a section and renumbers its siblings.
// Removing the last item sets the section's Empty flag.
func (s *Store[T, P]) RemoveItem(sectionID, itemID string) error {
	i := s.index(sectionID)
	if i < 0 {
		return fmt.Errorf("remove item from %s: %w", sectionID, ErrSectionNotFound)
	}
	j := position.IndexOf[T, P](s.sections[i].Items, itemID)
	if j < 0 {
		return fmt.Errorf("remove item %s from %s: %w", itemID, sectionID, ErrItemNotFound)
	}
	items, err := position.RemoveAt[T, P](s.sections[i].Items, j)
	if err != nil {
		return err
	}
	s.sections = s.replace(i, func(sec *recipe.Section[T]) {
		sec.Items = items
		sec.Empty = len(items) == 0
	})
	return nil
}

// ReorderItems moves an item within one section.
func (s *Store[T, P]) ReorderItems(sectionID string, from, to int) error {
	i := s.index(sectionID)
	if i < 0 {
		return fmt.Errorf("reorder items in %s: %w", sectionID, ErrSectionNotFound)
	}
	items, err := position.ReorderWithinScope[T, P](s.sections[i].Items, from, to)
	if err != nil {
		return err
	}
	s.sections = s.replace(i, func(sec *recipe.Section[T]) { sec.Items = items })
	return nil
}

// MoveItem moves the item at sourceIndex of one section to destIndex of
// another. When both ids name the same section this is ReorderItems.
// destIndex is clamped; sourceIndex must exist.
func (s *Store[T, P]) MoveItem(sourceID, destID string, sourceIndex, destIndex int) error {
	if sourceID == destID {
		return s.ReorderItems(sourceID, sourceIndex, destIndex)
	}
	si := s.index(sourceID)
	if si < 0 {
		return fmt.Errorf("move item from %s: %w", sourceID, ErrSectionNotFound)
	}
	di := s.index(destID)
	if di < 0 {
		return fmt.Errorf("move item to %s: %w", destID, ErrSectionNotFound)
	}

	src, dst, err := position.MoveBetweenScopes[T, P](s.sections[si].Items, s.sections[di].Items, sourceIndex, destIndex)
	if err != nil {
		return err
	}

	next := s.replace(si, func(sec *recipe.Section[T]) {
		sec.Items = src
		sec.Empty = len(src) == 0
	})
	next[di].Items = dst
	next[di].Empty = false
	s.sections = next
	return nil
}

// EmptySections returns the ids of sections that hold no items.
func (s *Store[T, P]) EmptySections() []string {
	var ids []string
	for _, sec := range s.sections {
		if sec.Empty {
			ids = append(ids, sec.ID)
		}
	}
	return ids
}

func (s *Store[T, P]) index(id string) int {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// replace returns a copy of the section list with section i edited by fn.
func (s *Store[T, P]) replace(i int, fn func(*recipe.Section[T])) []recipe.Section[T] {
	next := make([]recipe.Section[T], len(s.sections))
	copy(next, s.sections)
	fn(&next[i])
	return next
}
