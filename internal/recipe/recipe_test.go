package recipe

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientCloneDoesNotAlias(t *testing.T) {
	amount := 2.5
	orig := Ingredient{ID: "a", Position: Pos(3), Name: "flour", Amount: &amount}

	c := orig.Clone()
	*c.Position = 9
	*c.Amount = 1

	assert.Equal(t, 3, *orig.Position)
	assert.Equal(t, 2.5, *orig.Amount)
}

func keysOf[T any, P Item[T]](items []T) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = P(&items[i]).Key()
	}
	return out
}

func TestItemKindsSatisfyItem(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, keysOf([]Ingredient{{ID: "a"}, {ID: "b"}}))
	assert.Equal(t, []string{"s1"}, keysOf([]Instruction{{ID: "s1"}}))
}

func TestClearSlot(t *testing.T) {
	ing := Ingredient{Position: Pos(2)}
	ing.ClearSlot()
	_, ok := ing.Slot()
	assert.False(t, ok)

	ins := Instruction{Position: Pos(1)}
	ins.ClearSlot()
	assert.Nil(t, ins.Position)
}

func TestInstructionSlot(t *testing.T) {
	var s Instruction
	_, ok := s.Slot()
	assert.False(t, ok, "nil position is unassigned")

	s.SetSlot(4)
	n, ok := s.Slot()
	require.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestCloneSection(t *testing.T) {
	sec := Section[Ingredient]{ID: "s", Name: "Dough", Order: Pos(0), Items: []Ingredient{{ID: "a", Position: Pos(0)}}}

	c := CloneSection[Ingredient](sec)
	c.Items[0].Name = "changed"
	*c.Order = 5

	assert.Empty(t, sec.Items[0].Name)
	assert.Equal(t, 0, *sec.Order)
}

func TestCloneItemsNil(t *testing.T) {
	assert.Nil(t, CloneItems[Ingredient](nil))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Sauce", CleanName("  Sauce \t"))
	// "e" + combining grave composes to a single rune.
	assert.Equal(t, "Cr\u00e8me", CleanName("Cre\u0300me"))
	assert.Empty(t, CleanName("   "))
}

func TestLayoutModes(t *testing.T) {
	flat := Flat([]Ingredient{{ID: "a"}})
	assert.Equal(t, ModeFlat, flat.Mode())
	assert.Len(t, flat.Items(), 1)
	assert.Nil(t, flat.Sections())
	assert.Equal(t, 1, flat.Len())

	sec := Sectioned([]Section[Ingredient]{
		{ID: "s1", Items: []Ingredient{{ID: "a"}, {ID: "b"}}},
		{ID: "s2", Items: []Ingredient{{ID: "c"}}},
	})
	assert.Equal(t, ModeSectioned, sec.Mode())
	assert.Nil(t, sec.Items())
	assert.Equal(t, 3, sec.Len())

	var zero Layout[Instruction]
	assert.Equal(t, ModeFlat, zero.Mode())
}

func TestLayoutWithKeepsVariant(t *testing.T) {
	flat := Flat[Ingredient](nil)
	_, err := flat.WithSections(nil)
	assert.ErrorIs(t, err, ErrWrongMode)

	next, err := flat.WithItems([]Ingredient{{ID: "x"}})
	require.NoError(t, err)
	assert.Equal(t, 1, next.Len())

	sec := Sectioned[Ingredient](nil)
	_, err = sec.WithItems(nil)
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestDocumentLayouts(t *testing.T) {
	doc := Document{
		Ingredients:         []Ingredient{{ID: "a"}},
		InstructionSections: []Section[Instruction]{{ID: "s", Items: []Instruction{{ID: "i"}}}},
	}
	assert.Equal(t, ModeFlat, doc.IngredientLayout().Mode())
	assert.Equal(t, ModeSectioned, doc.InstructionLayout().Mode())
}

func TestNewDocumentJSONShape(t *testing.T) {
	doc := NewDocument("r", "Bread",
		Sectioned([]Section[Ingredient]{{ID: "s", Name: "Dough", Order: Pos(0), Items: []Ingredient{}, Empty: true}}),
		Flat[Instruction](nil),
	)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []any{}, raw["ingredients"])
	assert.Equal(t, []any{}, raw["instructions"])
	sections := raw["ingredientSections"].([]any)
	require.Len(t, sections, 1)
	_, hasEmpty := sections[0].(map[string]any)["Empty"]
	assert.False(t, hasEmpty, "runtime flag must not be serialised")
	assert.NotContains(t, raw, "instructionSections")
}

func TestSequenceGeneratorProducesCanonicalUUIDs(t *testing.T) {
	gen := NewSequenceGenerator()
	first := gen.Generate()
	second := gen.Generate()

	assert.Equal(t, "00000000-0000-7000-8000-000000000001", first)
	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(second)
	assert.NoError(t, err)
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("one", "two")
	assert.Equal(t, "one", gen.Generate())
	assert.Equal(t, "two", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
