package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cookbook/internal/recipe"
)

// List names used in the recipe_sections and recipe_items tables.
const (
	ListIngredients  = "ingredients"
	ListInstructions = "instructions"
)

// Save writes doc as the next version of its recipe and returns that
// version. The first save of an id is version 1. All tables are updated in
// one transaction.
//
// Save does not validate; callers hand it documents that already passed
// validation. Position uniqueness is still enforced by the schema.
func (s *Store) Save(ctx context.Context, doc recipe.Document) (int, error) {
	if doc.ID == "" {
		return 0, fmt.Errorf("save recipe: id is required")
	}
	payload, err := marshalDocument(doc)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: %w", doc.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: begin tx: %w", doc.ID, err)
	}
	defer tx.Rollback() // No-op if committed

	var version int
	err = tx.QueryRowContext(ctx, `SELECT version FROM recipes WHERE id = ?`, doc.ID).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("save recipe %s: read version: %w", doc.ID, err)
	}
	version++

	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: %w", doc.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, title, ingredient_mode, instruction_mode, payload, version, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			ingredient_mode = excluded.ingredient_mode,
			instruction_mode = excluded.instruction_mode,
			payload = excluded.payload,
			version = excluded.version,
			seq = excluded.seq
	`,
		doc.ID,
		doc.Title,
		string(doc.IngredientLayout().Mode()),
		string(doc.InstructionLayout().Mode()),
		payload,
		version,
		seq,
	)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: %w", doc.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipe_revisions (recipe_id, version, payload, seq)
		VALUES (?, ?, ?, ?)
	`, doc.ID, version, payload, seq)
	if err != nil {
		return 0, fmt.Errorf("save recipe %s: write revision: %w", doc.ID, err)
	}

	if err := writePositions(ctx, tx, doc); err != nil {
		return 0, fmt.Errorf("save recipe %s: %w", doc.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save recipe %s: commit: %w", doc.ID, err)
	}

	s.logger.Debug("recipe stored", "recipe", doc.ID, "version", version, "seq", seq)
	return version, nil
}

// Delete removes a recipe and all its revisions.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete recipe %s: %w", id, ErrNotFound)
	}
	s.logger.Debug("recipe deleted", "recipe", id)
	return nil
}

// writePositions replaces the section and item rows of a recipe with those
// of doc. Both representations are recorded if present.
func writePositions(ctx context.Context, tx *sql.Tx, doc recipe.Document) error {
	for _, table := range []string{"recipe_items", "recipe_sections"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE recipe_id = ?`, doc.ID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := writeItems(ctx, tx, doc.ID, ListIngredients, "", doc.Ingredients); err != nil {
		return err
	}
	if err := writeSections(ctx, tx, doc.ID, ListIngredients, doc.IngredientSections); err != nil {
		return err
	}
	if err := writeItems(ctx, tx, doc.ID, ListInstructions, "", doc.Instructions); err != nil {
		return err
	}
	return writeSections(ctx, tx, doc.ID, ListInstructions, doc.InstructionSections)
}

func writeSections[T any, P recipe.Item[T]](ctx context.Context, tx *sql.Tx, recipeID, list string, secs []recipe.Section[T]) error {
	for i := range secs {
		sec := &secs[i]
		ord, ok := sec.Slot()
		if !ok {
			ord = i
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_sections (id, recipe_id, list, name, ord)
			VALUES (?, ?, ?, ?, ?)
		`, sec.ID, recipeID, list, sec.Name, ord)
		if err != nil {
			return fmt.Errorf("write section %s: %w", sec.ID, err)
		}
		if err := writeItems[T, P](ctx, tx, recipeID, list, sec.ID, sec.Items); err != nil {
			return err
		}
	}
	return nil
}

func writeItems[T any, P recipe.Item[T]](ctx context.Context, tx *sql.Tx, recipeID, list, sectionID string, items []T) error {
	for i := range items {
		item := P(&items[i])
		pos, ok := item.Slot()
		if !ok {
			pos = i
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_items (id, recipe_id, list, section_id, position)
			VALUES (?, ?, ?, ?, ?)
		`, item.Key(), recipeID, list, sectionID, pos)
		if err != nil {
			return fmt.Errorf("write item %s: %w", item.Key(), err)
		}
	}
	return nil
}

// nextSeq returns the next logical sequence number.
func nextSeq(ctx context.Context, tx *sql.Tx) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM recipe_revisions`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
