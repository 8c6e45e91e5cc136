package convert

import "github.com/roach88/cookbook/internal/recipe"

// IngredientsToSectioned wraps flat ingredients into the default section.
func IngredientsToSectioned(l recipe.Layout[recipe.Ingredient], gen recipe.IDGenerator) recipe.Layout[recipe.Ingredient] {
	return ToSectioned(l, gen, recipe.DefaultIngredientSection)
}

// IngredientsToFlat flattens ingredient sections.
func IngredientsToFlat(l recipe.Layout[recipe.Ingredient], gen recipe.IDGenerator) recipe.Layout[recipe.Ingredient] {
	return ToFlat(l, gen)
}

// InstructionsToSectioned wraps flat instructions into the default section.
func InstructionsToSectioned(l recipe.Layout[recipe.Instruction], gen recipe.IDGenerator) recipe.Layout[recipe.Instruction] {
	return ToSectioned(l, gen, recipe.DefaultInstructionSection)
}

// InstructionsToFlat flattens instruction sections. The placeholder for
// an empty result is numbered step 1.
func InstructionsToFlat(l recipe.Layout[recipe.Instruction], gen recipe.IDGenerator) recipe.Layout[recipe.Instruction] {
	flat := ToFlat(l, gen)
	if l.Len() == 0 {
		items := flat.Items()
		items[0].Step = 1
	}
	return flat
}
