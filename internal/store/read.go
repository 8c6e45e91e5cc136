package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cookbook/internal/recipe"
)

// Summary describes a stored recipe without its payload.
type Summary struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	IngredientMode  recipe.Mode `json:"ingredientMode"`
	InstructionMode recipe.Mode `json:"instructionMode"`
	Version         int         `json:"version"`
	Seq             int64       `json:"seq"`
}

// Record is a stored recipe with its current document.
type Record struct {
	Summary
	Document recipe.Document `json:"document"`
}

// Revision is one saved version of a recipe.
type Revision struct {
	Version int   `json:"version"`
	Seq     int64 `json:"seq"`
}

// ItemPosition is one row of recipe_items.
type ItemPosition struct {
	ItemID    string `json:"itemId"`
	List      string `json:"list"`
	SectionID string `json:"sectionId,omitempty"`
	Position  int    `json:"position"`
}

// Load returns the current version of a recipe.
// Returns ErrNotFound if the id is unknown.
func (s *Store) Load(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, ingredient_mode, instruction_mode, version, seq, payload
		FROM recipes
		WHERE id = ?
	`, id)

	var (
		rec     Record
		payload string
	)
	err := row.Scan(&rec.ID, &rec.Title, &rec.IngredientMode, &rec.InstructionMode, &rec.Version, &rec.Seq, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("load recipe %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("load recipe %s: %w", id, err)
	}

	rec.Document, err = unmarshalDocument(payload)
	if err != nil {
		return Record{}, fmt.Errorf("load recipe %s: %w", id, err)
	}
	return rec, nil
}

// LoadVersion returns one saved version of a recipe.
func (s *Store) LoadVersion(ctx context.Context, id string, version int) (recipe.Document, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM recipe_revisions
		WHERE recipe_id = ? AND version = ?
	`, id, version).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return recipe.Document{}, fmt.Errorf("load recipe %s version %d: %w", id, version, ErrNotFound)
	}
	if err != nil {
		return recipe.Document{}, fmt.Errorf("load recipe %s version %d: %w", id, version, err)
	}
	return unmarshalDocument(payload)
}

// List returns every stored recipe ordered by last write.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, ingredient_mode, instruction_mode, version, seq
		FROM recipes
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.IngredientMode, &sum.InstructionMode, &sum.Version, &sum.Seq); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return summaries, nil
}

// History returns the saved versions of a recipe, oldest first.
func (s *Store) History(ctx context.Context, id string) ([]Revision, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT version, seq FROM recipe_revisions
		WHERE recipe_id = ?
		ORDER BY version ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", id, err)
	}
	defer rows.Close()

	revisions := []Revision{}
	for rows.Next() {
		var rev Revision
		if err := rows.Scan(&rev.Version, &rev.Seq); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	if len(revisions) == 0 {
		return nil, fmt.Errorf("history %s: %w", id, ErrNotFound)
	}
	return revisions, nil
}

// ItemPositions returns the stored positions of one list, grouped by
// section order and then position. Flat items have an empty SectionID.
func (s *Store) ItemPositions(ctx context.Context, id, list string) ([]ItemPosition, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.list, i.section_id, i.position
		FROM recipe_items i
		LEFT JOIN recipe_sections s ON s.recipe_id = i.recipe_id AND s.id = i.section_id
		WHERE i.recipe_id = ? AND i.list = ?
		ORDER BY COALESCE(s.ord, -1) ASC, i.position ASC, i.id COLLATE BINARY ASC
	`, id, list)
	if err != nil {
		return nil, fmt.Errorf("item positions %s: %w", id, err)
	}
	defer rows.Close()

	positions := []ItemPosition{}
	for rows.Next() {
		var p ItemPosition
		if err := rows.Scan(&p.ItemID, &p.List, &p.SectionID, &p.Position); err != nil {
			return nil, fmt.Errorf("scan item position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item positions: %w", err)
	}
	return positions, nil
}
