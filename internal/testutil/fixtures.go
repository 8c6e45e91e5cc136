package testutil

import (
	"fmt"

	"github.com/roach88/cookbook/internal/recipe"
)

// ID returns a fixed test id. Fixed ids use version nibble 4 so they never
// collide with recipe.SequenceGenerator output.
func ID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012x", n)
}

// Ingredient builds a named ingredient at pos.
func Ingredient(id int, name string, pos int) recipe.Ingredient {
	return recipe.Ingredient{ID: ID(id), Name: name, Position: recipe.Pos(pos)}
}

// Step builds an instruction at pos whose step number is pos+1.
func Step(id int, content string, pos int) recipe.Instruction {
	return recipe.Instruction{ID: ID(id), Content: content, Step: float64(pos + 1), Position: recipe.Pos(pos)}
}

// FlatDocument is a valid recipe with flat ingredient and instruction lists:
// ingredients 10-12 (flour, milk, egg) and instructions 20-21.
func FlatDocument() recipe.Document {
	return recipe.Document{
		ID:    ID(1),
		Title: "Pancakes",
		Ingredients: []recipe.Ingredient{
			Ingredient(10, "flour", 0),
			Ingredient(11, "milk", 1),
			Ingredient(12, "egg", 2),
		},
		Instructions: []recipe.Instruction{
			Step(20, "Whisk", 0),
			Step(21, "Fry", 1),
		},
	}
}

// SectionedDocument is a valid recipe whose ingredients live in two
// sections: 30 "Sponge" (items 40, 41) and 31 "Frosting" (item 42).
// Instructions stay flat.
func SectionedDocument() recipe.Document {
	return recipe.Document{
		ID:          ID(2),
		Title:       "Layer cake",
		Ingredients: []recipe.Ingredient{},
		IngredientSections: []recipe.Section[recipe.Ingredient]{
			{ID: ID(30), Name: "Sponge", Order: recipe.Pos(0), Items: []recipe.Ingredient{
				Ingredient(40, "flour", 0),
				Ingredient(41, "sugar", 1),
			}},
			{ID: ID(31), Name: "Frosting", Order: recipe.Pos(1), Items: []recipe.Ingredient{
				Ingredient(42, "butter", 0),
			}},
		},
		Instructions: []recipe.Instruction{Step(50, "Bake", 0)},
	}
}
