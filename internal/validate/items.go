package validate

import (
	"fmt"

	"github.com/roach88/cookbook/internal/recipe"
)

// ValidateIngredient checks one ingredient. path prefixes every field,
// e.g. "ingredients[2]".
func ValidateIngredient(ing recipe.Ingredient, path string) []ValidationError {
	var errs []ValidationError
	errs = append(errs, ValidateID(ing.ID, join(path, "id"))...)
	errs = append(errs, rank(ing.Position, join(path, "position"), "position")...)
	errs = append(errs, requiredText(ing.Name, join(path, "name"), "name")...)
	if ing.Amount != nil {
		errs = append(errs, nonNegative(*ing.Amount, join(path, "amount"), "amount")...)
	}
	return errs
}

// ValidateInstruction checks one instruction.
func ValidateInstruction(ins recipe.Instruction, path string) []ValidationError {
	var errs []ValidationError
	errs = append(errs, ValidateID(ins.ID, join(path, "id"))...)
	errs = append(errs, rank(ins.Position, join(path, "position"), "position")...)
	errs = append(errs, positiveInt(ins.Step, join(path, "step"), "step")...)
	errs = append(errs, requiredText(ins.Content, join(path, "content"), "content")...)
	if ins.Duration != nil {
		errs = append(errs, positiveInt(*ins.Duration, join(path, "duration"), "duration")...)
	}
	return errs
}

// ItemValidator validates one item at a field path.
type ItemValidator[T any] func(item T, path string) []ValidationError

// ValidateSection checks a section and every item in it. A section without
// items is rejected here even though editing tolerates it temporarily.
func ValidateSection[T any](sec recipe.Section[T], path string, item ItemValidator[T]) []ValidationError {
	var errs []ValidationError
	errs = append(errs, ValidateID(sec.ID, join(path, "id"))...)
	errs = append(errs, requiredText(sec.Name, join(path, "name"), "section name")...)
	errs = append(errs, rank(sec.Order, join(path, "order"), "order")...)

	if len(sec.Items) == 0 {
		errs = append(errs, ValidationError{
			Field:   join(path, "items"),
			Message: "section must contain at least one item",
			Code:    ErrSectionEmpty,
		})
	}
	for i, it := range sec.Items {
		errs = append(errs, item(it, fmt.Sprintf("%s[%d]", join(path, "items"), i))...)
	}
	return errs
}

// ValidateIngredientSection checks an ingredient section.
func ValidateIngredientSection(sec recipe.Section[recipe.Ingredient], path string) []ValidationError {
	return ValidateSection(sec, path, ValidateIngredient)
}

// ValidateInstructionSection checks an instruction section.
func ValidateInstructionSection(sec recipe.Section[recipe.Instruction], path string) []ValidationError {
	return ValidateSection(sec, path, ValidateInstruction)
}
