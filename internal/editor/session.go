package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/cookbook/internal/convert"
	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
	"github.com/roach88/cookbook/internal/sections"
	"github.com/roach88/cookbook/internal/validate"
)

// Persister receives validated documents. It returns the stored version.
type Persister interface {
	Save(ctx context.Context, doc recipe.Document) (int, error)
}

// Session is one recipe in edit state.
type Session struct {
	id           string
	title        string
	ingredients  recipe.Layout[recipe.Ingredient]
	instructions recipe.Layout[recipe.Instruction]

	// Flat items that arrived next to sections. They are not editable but
	// travel with the document until the list is flattened.
	looseIngredients  []recipe.Ingredient
	looseInstructions []recipe.Instruction

	gen    recipe.IDGenerator
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator overrides the default UUIDv7 generator.
func WithIDGenerator(gen recipe.IDGenerator) Option {
	return func(s *Session) { s.gen = gen }
}

// WithLogger sets the session logger. Without it logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession opens doc for editing. The document is deep-copied, so the
// caller's value is never touched by later edits.
func NewSession(doc recipe.Document, opts ...Option) *Session {
	s := &Session{
		id:     doc.ID,
		title:  doc.Title,
		gen:    recipe.UUIDGenerator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ingredients = cloneLayout(doc.IngredientLayout())
	s.instructions = cloneLayout(doc.InstructionLayout())

	if len(doc.IngredientSections) > 0 && len(doc.Ingredients) > 0 {
		s.looseIngredients = recipe.CloneItems(doc.Ingredients)
		s.logger.Warn("document has flat ingredients alongside sections; keeping them outside the sections",
			"recipe", doc.ID, "flat", len(doc.Ingredients))
	}
	if len(doc.InstructionSections) > 0 && len(doc.Instructions) > 0 {
		s.looseInstructions = recipe.CloneItems(doc.Instructions)
		s.logger.Warn("document has flat instructions alongside sections; keeping them outside the sections",
			"recipe", doc.ID, "flat", len(doc.Instructions))
	}
	return s
}

// ID returns the recipe id.
func (s *Session) ID() string { return s.id }

// Title returns the recipe title.
func (s *Session) Title() string { return s.title }

// SetTitle trims and sets the title.
func (s *Session) SetTitle(title string) { s.title = recipe.CleanName(title) }

// Ingredients returns the ingredient layout.
func (s *Session) Ingredients() recipe.Layout[recipe.Ingredient] { return s.ingredients }

// Instructions returns the instruction layout.
func (s *Session) Instructions() recipe.Layout[recipe.Instruction] { return s.instructions }

// Mode returns the active representation of one list.
func (s *Session) Mode(list List) (recipe.Mode, error) {
	switch list {
	case Ingredients:
		return s.ingredients.Mode(), nil
	case Instructions:
		return s.instructions.Mode(), nil
	default:
		return "", fmt.Errorf("mode %q: %w", list, ErrUnknownList)
	}
}

// Document assembles the current state as a payload. Loose flat items
// are written next to the sections they arrived with.
func (s *Session) Document() recipe.Document {
	doc := recipe.NewDocument(s.id, s.title, cloneLayout(s.ingredients), cloneLayout(s.instructions))
	if len(s.looseIngredients) > 0 {
		doc.Ingredients = recipe.CloneItems(s.looseIngredients)
	}
	if len(s.looseInstructions) > 0 {
		doc.Instructions = recipe.CloneItems(s.looseInstructions)
	}
	return doc
}

// Drop applies a drag-and-drop result to one list. A cancelled drop is a
// no-op. On error the session is unchanged.
func (s *Session) Drop(list List, ev DropEvent) error {
	if ev.Cancelled() {
		s.logger.Debug("drop cancelled", "list", list)
		return nil
	}
	err := s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			return applyDrop(l, s.gen, ev)
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			return applyDrop(l, s.gen, ev)
		},
	)
	if err != nil {
		return err
	}
	s.logger.Debug("drop applied", "list", list, "event", ev.String())
	return nil
}

// OrganizeIntoSections switches a flat list into one default section.
func (s *Session) OrganizeIntoSections(list List) error {
	return s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			if l.Mode() == recipe.ModeSectioned {
				return l, nil
			}
			return convert.IngredientsToSectioned(l, s.gen), nil
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			if l.Mode() == recipe.ModeSectioned {
				return l, nil
			}
			return convert.InstructionsToSectioned(l, s.gen), nil
		},
	)
}

// UseSimpleList flattens a sectioned list. Loose flat items are appended
// after the section items.
func (s *Session) UseSimpleList(list List) error {
	return s.update(list,
		func(l recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error) {
			if l.Mode() == recipe.ModeFlat {
				return l, nil
			}
			next := withLoose(l, s.looseIngredients, func(l recipe.Layout[recipe.Ingredient]) recipe.Layout[recipe.Ingredient] {
				return convert.IngredientsToFlat(l, s.gen)
			})
			s.looseIngredients = nil
			return next, nil
		},
		func(l recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error) {
			if l.Mode() == recipe.ModeFlat {
				return l, nil
			}
			next := withLoose(l, s.looseInstructions, func(l recipe.Layout[recipe.Instruction]) recipe.Layout[recipe.Instruction] {
				return convert.InstructionsToFlat(l, s.gen)
			})
			s.looseInstructions = nil
			return next, nil
		},
	)
}

// Validate checks the current document without saving.
func (s *Session) Validate() []validate.ValidationError {
	return validate.ValidateDocument(s.Document())
}

// Save repairs positions, validates and, when valid, persists the document.
// Validation failures come back as *InvalidError and nothing is saved.
func (s *Session) Save(ctx context.Context, p Persister) (int, error) {
	if report := s.Repair(); len(report.Scopes) > 0 {
		s.logger.Info("repaired positions before save", "recipe", s.id, "scopes", len(report.Scopes))
	}

	doc := s.Document()
	if errs := validate.ValidateDocument(doc); len(errs) > 0 {
		s.logger.Debug("save rejected", "recipe", s.id, "errors", len(errs))
		return 0, &InvalidError{Errors: errs}
	}

	version, err := p.Save(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: %w", s.id, err)
	}
	s.logger.Info("recipe saved", "recipe", s.id, "version", version)
	return version, nil
}

// update routes a pair of per-kind edits to the selected list and commits
// the result only on success.
func (s *Session) update(
	list List,
	ing func(recipe.Layout[recipe.Ingredient]) (recipe.Layout[recipe.Ingredient], error),
	ins func(recipe.Layout[recipe.Instruction]) (recipe.Layout[recipe.Instruction], error),
) error {
	switch list {
	case Ingredients:
		next, err := ing(s.ingredients)
		if err != nil {
			return err
		}
		s.ingredients = next
	case Instructions:
		next, err := ins(s.instructions)
		if err != nil {
			return err
		}
		s.instructions = next
	default:
		return fmt.Errorf("list %q: %w", list, ErrUnknownList)
	}
	return nil
}

func cloneLayout[T any, P recipe.Item[T]](l recipe.Layout[T]) recipe.Layout[T] {
	if l.Mode() == recipe.ModeSectioned {
		secs := make([]recipe.Section[T], len(l.Sections()))
		for i, sec := range l.Sections() {
			secs[i] = recipe.CloneSection[T, P](sec)
		}
		return recipe.Sectioned(secs)
	}
	return recipe.Flat(recipe.CloneItems[T, P](l.Items()))
}

// withLoose flattens l and appends loose items, renumbering the result.
// Sections without any items contribute nothing, so no placeholder is
// added when loose items exist.
func withLoose[T any, P recipe.Item[T]](l recipe.Layout[T], loose []T, flatten func(recipe.Layout[T]) recipe.Layout[T]) recipe.Layout[T] {
	if len(loose) == 0 {
		return flatten(l)
	}
	var items []T
	if l.Len() > 0 {
		items = flatten(l).Items()
	}
	items = append(items, recipe.CloneItems[T, P](loose)...)
	position.Renumber[T, P](items)
	return recipe.Flat(items)
}

// sectionEdit runs fn against a section store over l. Only sectioned
// layouts have sections to edit.
func sectionEdit[T any, P recipe.Item[T]](l recipe.Layout[T], gen recipe.IDGenerator, fn func(*sections.Store[T, P]) error) (recipe.Layout[T], error) {
	if l.Mode() != recipe.ModeSectioned {
		return l, ErrWrongMode
	}
	st := sections.New[T, P](l.Sections(), gen)
	if err := fn(st); err != nil {
		return l, err
	}
	return l.WithSections(st.Sections())
}

// flatEdit runs fn against the items of a flat layout.
func flatEdit[T any, P recipe.Item[T]](l recipe.Layout[T], fn func([]T) ([]T, error)) (recipe.Layout[T], error) {
	if l.Mode() != recipe.ModeFlat {
		return l, ErrWrongMode
	}
	next, err := fn(l.Items())
	if err != nil {
		return l, err
	}
	return l.WithItems(next)
}

// removeFrom drops an item by id from a flat list.
func removeFrom[T any, P recipe.Item[T]](items []T, itemID string) ([]T, error) {
	i := position.IndexOf[T, P](items, itemID)
	if i < 0 {
		return nil, fmt.Errorf("remove item %s: %w", itemID, ErrItemNotFound)
	}
	return position.RemoveAt[T, P](items, i)
}
