package validate

import (
	"fmt"
	"strings"

	"github.com/roach88/cookbook/internal/recipe"
)

// ValidateDocument checks a whole recipe payload: its id and title, every
// item and section in both representations, ingredient and instruction
// presence, and id uniqueness. Section ids share one namespace across both kinds; item ids
// share another across every scope.
func ValidateDocument(doc recipe.Document) []ValidationError {
	var errs []ValidationError
	errs = append(errs, ValidateID(doc.ID, "id")...)

	// E215: a payload needs a title
	if strings.TrimSpace(doc.Title) == "" {
		errs = append(errs, ValidationError{
			Field:   "title",
			Message: "title is required",
			Code:    ErrTitleEmpty,
		})
	}

	for i, ing := range doc.Ingredients {
		errs = append(errs, ValidateIngredient(ing, fmt.Sprintf("ingredients[%d]", i))...)
	}
	for i, sec := range doc.IngredientSections {
		errs = append(errs, ValidateIngredientSection(sec, fmt.Sprintf("ingredientSections[%d]", i))...)
	}
	for i, ins := range doc.Instructions {
		errs = append(errs, ValidateInstruction(ins, fmt.Sprintf("instructions[%d]", i))...)
	}
	for i, sec := range doc.InstructionSections {
		errs = append(errs, ValidateInstructionSection(sec, fmt.Sprintf("instructionSections[%d]", i))...)
	}

	// E211/E212: presence counts span the flat list and every section
	if countItems(doc.Ingredients, doc.IngredientSections) == 0 {
		errs = append(errs, ValidationError{
			Field:   "ingredients",
			Message: "at least one ingredient is required",
			Code:    ErrNoIngredients,
		})
	}
	if countItems(doc.Instructions, doc.InstructionSections) == 0 {
		errs = append(errs, ValidationError{
			Field:   "instructions",
			Message: "at least one instruction is required",
			Code:    ErrNoInstructions,
		})
	}

	errs = append(errs, duplicateIDs(doc)...)
	return errs
}

func countItems[T any](flat []T, sections []recipe.Section[T]) int {
	n := len(flat)
	for _, s := range sections {
		n += len(s.Items)
	}
	return n
}

// duplicateIDs reports the second and later uses of any id. Empty ids are
// already reported as missing and are not counted here.
func duplicateIDs(doc recipe.Document) []ValidationError {
	var errs []ValidationError
	sectionSeen := make(map[string]string)
	itemSeen := make(map[string]string)

	section := func(id, path string) {
		if id == "" {
			return
		}
		if first, ok := sectionSeen[id]; ok {
			errs = append(errs, ValidationError{
				Field:   path,
				Message: fmt.Sprintf("duplicate section id %q (first used at %s)", id, first),
				Code:    ErrDuplicateSection,
			})
			return
		}
		sectionSeen[id] = path
	}
	item := func(id, path string) {
		if id == "" {
			return
		}
		if first, ok := itemSeen[id]; ok {
			errs = append(errs, ValidationError{
				Field:   path,
				Message: fmt.Sprintf("duplicate item id %q (first used at %s)", id, first),
				Code:    ErrDuplicateItem,
			})
			return
		}
		itemSeen[id] = path
	}

	for i, ing := range doc.Ingredients {
		item(ing.ID, fmt.Sprintf("ingredients[%d].id", i))
	}
	for i, sec := range doc.IngredientSections {
		section(sec.ID, fmt.Sprintf("ingredientSections[%d].id", i))
		for j, ing := range sec.Items {
			item(ing.ID, fmt.Sprintf("ingredientSections[%d].items[%d].id", i, j))
		}
	}
	for i, ins := range doc.Instructions {
		item(ins.ID, fmt.Sprintf("instructions[%d].id", i))
	}
	for i, sec := range doc.InstructionSections {
		section(sec.ID, fmt.Sprintf("instructionSections[%d].id", i))
		for j, ins := range sec.Items {
			item(ins.ID, fmt.Sprintf("instructionSections[%d].items[%d].id", i, j))
		}
	}
	return errs
}

// HasCode reports whether any error carries code.
func HasCode(errs []ValidationError, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}
