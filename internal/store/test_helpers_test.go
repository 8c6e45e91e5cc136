package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/roach88/cookbook/internal/recipe"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012x", n)
}

// createTestDocument returns a valid flat document.
func createTestDocument(id int, title string) recipe.Document {
	return recipe.Document{
		ID:    testID(id),
		Title: title,
		Ingredients: []recipe.Ingredient{
			{ID: testID(id*100 + 1), Name: "flour", Position: recipe.Pos(0)},
			{ID: testID(id*100 + 2), Name: "water", Position: recipe.Pos(1)},
		},
		Instructions: []recipe.Instruction{
			{ID: testID(id*100 + 3), Content: "Mix", Step: 1, Position: recipe.Pos(0)},
		},
	}
}

// createSectionedDocument returns a valid document with ingredient sections.
func createSectionedDocument(id int) recipe.Document {
	doc := createTestDocument(id, "Sectioned")
	doc.Ingredients = []recipe.Ingredient{}
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{
		{ID: testID(id*100 + 10), Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Ingredient{
			{ID: testID(id*100 + 11), Name: "flour", Position: recipe.Pos(0)},
		}},
		{ID: testID(id*100 + 12), Name: "Topping", Order: recipe.Pos(1), Items: []recipe.Ingredient{
			{ID: testID(id*100 + 13), Name: "cheese", Position: recipe.Pos(0)},
			{ID: testID(id*100 + 14), Name: "basil", Position: recipe.Pos(1)},
		}},
	}
	return doc
}
