package editor

import (
	"errors"
	"fmt"

	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
	"github.com/roach88/cookbook/internal/sections"
)

// AddSection appends a named section to a sectioned list and returns its id.
func (s *Session) AddSection(list List, name string) (string, error) {
	var id string
	err := s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			return sectionEdit(l, s.gen, func(st *sections.IngredientStore) error {
				sec, err := st.AddSection(name)
				id = sec.ID
				return err
			})
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			return sectionEdit(l, s.gen, func(st *sections.InstructionStore) error {
				sec, err := st.AddSection(name)
				id = sec.ID
				return err
			})
		},
	)
	if err != nil {
		return "", err
	}
	s.logger.Debug("section added", "list", list, "section", id)
	return id, nil
}

// RemoveSection deletes a section and every item in it.
func (s *Session) RemoveSection(list List, sectionID string) error {
	return s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			return sectionEdit(l, s.gen, func(st *sections.IngredientStore) error {
				return st.RemoveSection(sectionID)
			})
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			return sectionEdit(l, s.gen, func(st *sections.InstructionStore) error {
				return st.RemoveSection(sectionID)
			})
		},
	)
}

// RenameSection changes a section label. Blank names are rejected.
func (s *Session) RenameSection(list List, sectionID, name string) error {
	return s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			return sectionEdit(l, s.gen, func(st *sections.IngredientStore) error {
				return st.RenameSection(sectionID, name)
			})
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			return sectionEdit(l, s.gen, func(st *sections.InstructionStore) error {
				return st.RenameSection(sectionID, name)
			})
		},
	)
}

// EmptySections lists the sections of one list that currently hold no items.
func (s *Session) EmptySections(list List) ([]string, error) {
	switch list {
	case Ingredients:
		if s.ingredients.Mode() != recipe.ModeSectioned {
			return nil, nil
		}
		return sections.New[recipe.Ingredient](s.ingredients.Sections(), s.gen).EmptySections(), nil
	case Instructions:
		if s.instructions.Mode() != recipe.ModeSectioned {
			return nil, nil
		}
		return sections.New[recipe.Instruction](s.instructions.Sections(), s.gen).EmptySections(), nil
	default:
		return nil, fmt.Errorf("empty sections %q: %w", list, ErrUnknownList)
	}
}

// AddIngredient appends an ingredient to the flat list (scope FlatScope)
// or to the named section. The stored copy is returned.
func (s *Session) AddIngredient(scope string, ing recipe.Ingredient) (recipe.Ingredient, error) {
	var out recipe.Ingredient
	next, err := addItem(s.ingredients, s.gen, scope, ing, &out)
	if err != nil {
		return recipe.Ingredient{}, err
	}
	s.ingredients = next
	return out, nil
}

// AddInstruction appends an instruction to the flat list or a section.
func (s *Session) AddInstruction(scope string, ins recipe.Instruction) (recipe.Instruction, error) {
	var out recipe.Instruction
	next, err := addItem(s.instructions, s.gen, scope, ins, &out)
	if err != nil {
		return recipe.Instruction{}, err
	}
	s.instructions = next
	return out, nil
}

// RemoveItem deletes an item by id from the flat list or a section.
func (s *Session) RemoveItem(list List, scope, itemID string) error {
	return s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			return removeItem(l, s.gen, scope, itemID)
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			return removeItem(l, s.gen, scope, itemID)
		},
	)
}

// EditIngredient applies fn to the ingredient with the given id wherever it
// lives. Identity and rank are owned by the session and survive fn.
func (s *Session) EditIngredient(itemID string, fn func(*recipe.Ingredient)) error {
	next, err := editItem(s.ingredients, itemID, fn)
	if err != nil {
		return err
	}
	s.ingredients = next
	return nil
}

// EditInstruction is EditIngredient for instructions.
func (s *Session) EditInstruction(itemID string, fn func(*recipe.Instruction)) error {
	next, err := editItem(s.instructions, itemID, fn)
	if err != nil {
		return err
	}
	s.instructions = next
	return nil
}

func addItem[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, scope string, item T, out *T) (recipe.Layout[T], error) {
	if l.Mode() == recipe.ModeFlat {
		if scope != FlatScope {
			return l, fmt.Errorf("add item to %q in flat list: %w", scope, ErrWrongMode)
		}
		return flatEdit[T, P](l, func(items []T) ([]T, error) {
			item = P(&item).Clone()
			if P(&item).Key() == "" {
				P(&item).SetKey(gen.Generate())
			}
			next := position.InsertAt[T, P](items, item, len(items))
			*out = next[len(next)-1]
			return next, nil
		})
	}
	if scope == FlatScope {
		return l, fmt.Errorf("add item to %q in sectioned list: %w", scope, ErrWrongMode)
	}
	return sectionEdit(l, gen, func(st *sections.Store[T, P]) error {
		stored, err := st.AddItem(scope, item)
		if err != nil {
			return scopeError(err, scope)
		}
		*out = stored
		return nil
	})
}

func removeItem[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, scope, itemID string) (recipe.Layout[T], error) {
	if l.Mode() == recipe.ModeFlat {
		if scope != FlatScope {
			return l, fmt.Errorf("remove item from %q in flat list: %w", scope, ErrWrongMode)
		}
		return flatEdit[T, P](l, func(items []T) ([]T, error) {
			return removeFrom[T, P](items, itemID)
		})
	}
	if scope == FlatScope {
		return l, fmt.Errorf("remove item from %q in sectioned list: %w", scope, ErrWrongMode)
	}
	return sectionEdit(l, gen, func(st *sections.Store[T, P]) error {
		if err := st.RemoveItem(scope, itemID); err != nil {
			return scopeError(err, scope)
		}
		return nil
	})
}

func editItem[T any, P recipe.Item[T]](l recipe.Layout[T], itemID string, fn func(*T)) (recipe.Layout[T], error) {
	apply := func(items []T) ([]T, bool) {
		i := position.IndexOf[T, P](items, itemID)
		if i < 0 {
			return items, false
		}
		next := make([]T, len(items))
		copy(next, items)
		edited := P(&items[i]).Clone()
		fn(&edited)
		P(&edited).SetKey(itemID)
		if rank, ok := P(&items[i]).Slot(); ok {
			P(&edited).SetSlot(rank)
		} else {
			P(&edited).ClearSlot()
		}
		next[i] = edited
		return next, true
	}

	if l.Mode() == recipe.ModeFlat {
		next, ok := apply(l.Items())
		if !ok {
			return l, fmt.Errorf("edit item %s: %w", itemID, ErrItemNotFound)
		}
		return l.WithItems(next)
	}
	secs := l.Sections()
	for i := range secs {
		items, ok := apply(secs[i].Items)
		if !ok {
			continue
		}
		next := make([]recipe.Section[T], len(secs))
		copy(next, secs)
		next[i].Items = items
		return l.WithSections(next)
	}
	return l, fmt.Errorf("edit item %s: %w", itemID, ErrItemNotFound)
}

// scopeError maps a missing section onto ErrUnknownScope and leaves item
// errors alone.
func scopeError(err error, scope string) error {
	if isSectionNotFound(err) {
		return fmt.Errorf("section %q: %w", scope, ErrUnknownScope)
	}
	return err
}

func isSectionNotFound(err error) bool {
	return errors.Is(err, sections.ErrSectionNotFound)
}
