package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cookbook/internal/recipe"
)

const (
	id1 = "00000000-0000-7000-8000-000000000001"
	id2 = "00000000-0000-7000-8000-000000000002"
	id3 = "00000000-0000-7000-8000-000000000003"
	id4 = "00000000-0000-7000-8000-000000000004"
	id5 = "00000000-0000-7000-8000-000000000005"
	id6 = "00000000-0000-7000-8000-000000000006"
)

func float(v float64) *float64 { return &v }

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func validIngredient(id string, pos int) recipe.Ingredient {
	return recipe.Ingredient{ID: id, Position: recipe.Pos(pos), Name: "flour", Amount: float(2), Unit: "cups"}
}

func validInstruction(id string, pos int) recipe.Instruction {
	return recipe.Instruction{ID: id, Position: recipe.Pos(pos), Step: float64(pos + 1), Content: "Mix well"}
}

// =============================================================================
// Identifier Tests
// =============================================================================

func TestValidateID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		code string
	}{
		{"canonical", "0190f7a2-6c1e-7d3a-9f00-1c2b3a4d5e6f", ""},
		{"uppercase", "0190F7A2-6C1E-7D3A-9F00-1C2B3A4D5E6F", ""},
		{"missing", "", ErrIDMissing},
		{"not hex", "zzzzzzzz-6c1e-7d3a-9f00-1c2b3a4d5e6f", ErrIDMalformed},
		{"no hyphens", "0190f7a26c1e7d3a9f001c2b3a4d5e6f", ErrIDMalformed},
		{"braced", "{0190f7a2-6c1e-7d3a-9f00-1c2b3a4d5e6f}", ErrIDMalformed},
		{"urn", "urn:uuid:0190f7a2-6c1e-7d3a-9f00-1c2b3a4d5e6f", ErrIDMalformed},
		{"short", "abc", ErrIDMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateID(tt.id, "id")
			if tt.code == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, "id", errs[0].Field)
		})
	}
}

// =============================================================================
// Item Tests
// =============================================================================

func TestValidateIngredientValid(t *testing.T) {
	assert.Empty(t, ValidateIngredient(validIngredient(id1, 0), "ingredients[0]"))
}

func TestValidateIngredientZeroAmountAllowed(t *testing.T) {
	ing := validIngredient(id1, 0)
	ing.Amount = float(0)
	assert.Empty(t, ValidateIngredient(ing, ""))

	ing.Amount = nil
	assert.Empty(t, ValidateIngredient(ing, ""), "amount is optional")
}

func TestValidateIngredientEmptyVsWhitespaceName(t *testing.T) {
	ing := validIngredient(id1, 0)

	ing.Name = ""
	errs := ValidateIngredient(ing, "ingredients[0]")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTextEmpty, errs[0].Code)
	assert.Equal(t, "ingredients[0].name", errs[0].Field)

	ing.Name = "  \t "
	errs = ValidateIngredient(ing, "ingredients[0]")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTextWhitespace, errs[0].Code)
}

func TestValidateIngredientCollectsAllErrors(t *testing.T) {
	ing := recipe.Ingredient{ID: "bad", Position: recipe.Pos(-1), Name: "", Amount: float(-2)}

	errs := ValidateIngredient(ing, "x")

	assert.Equal(t, []string{ErrIDMalformed, ErrNegative, ErrTextEmpty, ErrNegative}, codes(errs))
	assert.Equal(t, "x.amount", errs[3].Field)
}

func TestValidateIngredientMissingPosition(t *testing.T) {
	ing := validIngredient(id1, 0)
	ing.Position = nil

	errs := ValidateIngredient(ing, "")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrRankMissing, errs[0].Code)
	assert.Equal(t, "position", errs[0].Field)
}

func TestValidateIngredientNaNAmount(t *testing.T) {
	ing := validIngredient(id1, 0)
	ing.Amount = float(math.NaN())

	errs := ValidateIngredient(ing, "")
	assert.Equal(t, []string{ErrNotFinite}, codes(errs))
}

func TestValidateInstructionValid(t *testing.T) {
	ins := validInstruction(id1, 0)
	ins.Duration = float(15)
	assert.Empty(t, ValidateInstruction(ins, "instructions[0]"))
}

func TestValidateInstructionStep(t *testing.T) {
	tests := []struct {
		name  string
		step  float64
		codes []string
	}{
		{"one", 1, nil},
		{"zero", 0, []string{ErrNotPositive}},
		{"negative", -3, []string{ErrNotPositive}},
		{"fraction", 1.5, []string{ErrNotInteger}},
		{"negative fraction", -0.5, []string{ErrNotPositive, ErrNotInteger}},
		{"infinite", math.Inf(1), []string{ErrNotFinite}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := validInstruction(id1, 0)
			ins.Step = tt.step

			errs := ValidateInstruction(ins, "s")
			if tt.codes == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.codes, codes(errs))
			for _, e := range errs {
				assert.Equal(t, "s.step", e.Field)
			}
		})
	}
}

func TestValidateInstructionDuration(t *testing.T) {
	ins := validInstruction(id1, 0)

	ins.Duration = float(0)
	assert.Equal(t, []string{ErrNotPositive}, codes(ValidateInstruction(ins, "")))

	ins.Duration = float(2.25)
	assert.Equal(t, []string{ErrNotInteger}, codes(ValidateInstruction(ins, "")))
}

func TestValidateInstructionContent(t *testing.T) {
	ins := validInstruction(id1, 0)
	ins.Content = "   "

	errs := ValidateInstruction(ins, "")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTextWhitespace, errs[0].Code)
	assert.Equal(t, "content", errs[0].Field)
}

// =============================================================================
// Section Tests
// =============================================================================

func TestValidateSectionValid(t *testing.T) {
	sec := recipe.Section[recipe.Ingredient]{
		ID:    id1,
		Name:  "Dough",
		Order: recipe.Pos(0),
		Items: []recipe.Ingredient{validIngredient(id2, 0)},
	}
	assert.Empty(t, ValidateIngredientSection(sec, "ingredientSections[0]"))
}

func TestValidateSectionEmptyIsRejected(t *testing.T) {
	sec := recipe.Section[recipe.Instruction]{ID: id1, Name: "Prep", Order: recipe.Pos(0)}

	errs := ValidateInstructionSection(sec, "instructionSections[0]")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSectionEmpty, errs[0].Code)
	assert.Equal(t, "instructionSections[0].items", errs[0].Field)
}

func TestValidateSectionNestedPaths(t *testing.T) {
	bad := validIngredient(id2, 0)
	bad.Name = " "
	sec := recipe.Section[recipe.Ingredient]{
		ID:    id1,
		Name:  "",
		Order: recipe.Pos(-1),
		Items: []recipe.Ingredient{validIngredient(id3, 0), bad},
	}

	errs := ValidateIngredientSection(sec, "ingredientSections[2]")

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{
		"ingredientSections[2].name",
		"ingredientSections[2].order",
		"ingredientSections[2].items[1].name",
	}, fields)
	assert.Equal(t, []string{ErrTextEmpty, ErrNegative, ErrTextWhitespace}, codes(errs))
}

// =============================================================================
// Document Tests
// =============================================================================

func validDocument() recipe.Document {
	return recipe.Document{
		ID:           id6,
		Title:        "Bread",
		Ingredients:  []recipe.Ingredient{validIngredient(id1, 0), validIngredient(id2, 1)},
		Instructions: []recipe.Instruction{validInstruction(id3, 0)},
	}
}

func TestValidateDocumentValid(t *testing.T) {
	assert.Empty(t, ValidateDocument(validDocument()))
}

func TestValidateDocumentSectionedValid(t *testing.T) {
	doc := recipe.Document{
		ID:          id6,
		Title:       "Bread",
		Ingredients: []recipe.Ingredient{},
		IngredientSections: []recipe.Section[recipe.Ingredient]{
			{ID: id4, Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Ingredient{validIngredient(id1, 0)}},
		},
		InstructionSections: []recipe.Section[recipe.Instruction]{
			{ID: id5, Name: "Bake", Order: recipe.Pos(0), Items: []recipe.Instruction{validInstruction(id2, 0)}},
		},
	}
	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateDocumentNoIngredientsAcrossScopes(t *testing.T) {
	doc := validDocument()
	doc.Ingredients = []recipe.Ingredient{}
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{{ID: id4, Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Ingredient{}}}

	errs := ValidateDocument(doc)

	require.True(t, HasCode(errs, ErrNoIngredients))
	assert.True(t, HasCode(errs, ErrSectionEmpty), "empty section reported alongside")
	for _, e := range errs {
		if e.Code == ErrNoIngredients {
			assert.Contains(t, e.Message, "at least one ingredient")
		}
	}
}

func TestValidateDocumentIngredientsOnlyInSectionsCount(t *testing.T) {
	doc := validDocument()
	doc.Ingredients = nil
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{
		{ID: id4, Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Ingredient{validIngredient(id1, 0)}},
	}

	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateDocumentNoInstructions(t *testing.T) {
	doc := validDocument()
	doc.Instructions = nil

	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNoInstructions, errs[0].Code)
	assert.Equal(t, "instructions", errs[0].Field)
}

func TestValidateDocumentDuplicateItemIDsAcrossKinds(t *testing.T) {
	doc := validDocument()
	doc.Instructions[0].ID = id1

	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateItem, errs[0].Code)
	assert.Equal(t, "instructions[0].id", errs[0].Field)
	assert.Contains(t, errs[0].Message, "ingredients[0].id")
}

func TestValidateDocumentDuplicateItemIDsAcrossFlatAndSection(t *testing.T) {
	doc := validDocument()
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{
		{ID: id4, Name: "Extra", Order: recipe.Pos(0), Items: []recipe.Ingredient{validIngredient(id2, 0)}},
	}

	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "ingredientSections[0].items[0].id", errs[0].Field)
}

func TestValidateDocumentDuplicateSectionIDsAcrossKinds(t *testing.T) {
	doc := validDocument()
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{
		{ID: id4, Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Ingredient{validIngredient(id5, 0)}},
	}
	doc.InstructionSections = []recipe.Section[recipe.Instruction]{
		{ID: id4, Name: "Dough", Order: recipe.Pos(0), Items: []recipe.Instruction{validInstruction(id6, 0)}},
	}

	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateSection, errs[0].Code)
	assert.Equal(t, "instructionSections[0].id", errs[0].Field)
}

func TestValidateDocumentDuplicateSectionNamesAllowed(t *testing.T) {
	doc := validDocument()
	doc.Ingredients = nil
	doc.IngredientSections = []recipe.Section[recipe.Ingredient]{
		{ID: id4, Name: "Topping", Order: recipe.Pos(0), Items: []recipe.Ingredient{validIngredient(id1, 0)}},
		{ID: id5, Name: "Topping", Order: recipe.Pos(1), Items: []recipe.Ingredient{validIngredient(id2, 0)}},
	}

	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateDocumentMissingTitle(t *testing.T) {
	doc := validDocument()
	doc.Title = "  "

	assert.Equal(t, []string{ErrTitleEmpty}, codes(ValidateDocument(doc)))
}

func TestValidateDocumentEmpty(t *testing.T) {
	errs := ValidateDocument(recipe.Document{})
	assert.Equal(t, []string{ErrIDMissing, ErrTitleEmpty, ErrNoIngredients, ErrNoInstructions}, codes(errs))
}

func TestValidateDocumentMalformedID(t *testing.T) {
	doc := validDocument()
	doc.ID = "recipe-1"

	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrIDMalformed, errs[0].Code)
	assert.Equal(t, "id", errs[0].Field)
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "title", Message: "title is required", Code: ErrTitleEmpty}
	assert.Equal(t, "[E215] title: title is required", e.Error())
}
