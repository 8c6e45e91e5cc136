package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
)

func ing(id string, pos int) recipe.Ingredient {
	return recipe.Ingredient{ID: id, Position: recipe.Pos(pos), Name: id}
}

func ids[T any, P recipe.Item[T]](items []T) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = P(&items[i]).Key()
	}
	return out
}

func TestToSectionedWrapsFlatItems(t *testing.T) {
	flat := recipe.Flat([]recipe.Ingredient{ing("a", 0), ing("b", 1), ing("c", 2)})
	gen := recipe.NewFixedGenerator("sec-1")

	got := IngredientsToSectioned(flat, gen)

	require.Equal(t, recipe.ModeSectioned, got.Mode())
	secs := got.Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, "sec-1", secs[0].ID)
	assert.Equal(t, recipe.DefaultIngredientSection, secs[0].Name)
	assert.Equal(t, 0, *secs[0].Order)
	assert.False(t, secs[0].Empty)
	assert.Equal(t, []string{"a", "b", "c"}, ids(secs[0].Items))
	assert.True(t, position.IsContiguous(secs[0].Items))
}

func TestToSectionedCopiesItems(t *testing.T) {
	items := []recipe.Ingredient{ing("a", 0)}
	got := ToSectioned(recipe.Flat(items), recipe.NewSequenceGenerator(), "Dough")

	sec := got.Sections()[0]
	sec.Items[0].Name = "changed"
	*sec.Items[0].Position = 42

	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, 0, *items[0].Position)
}

func TestToSectionedRenumbersCorruptPositions(t *testing.T) {
	flat := recipe.Flat([]recipe.Ingredient{ing("a", 4), ing("b", 4)})

	got := ToSectioned(flat, recipe.NewSequenceGenerator(), "X")

	assert.True(t, position.IsContiguous(got.Sections()[0].Items))
}

func TestToSectionedEmptyFlat(t *testing.T) {
	got := ToSectioned(recipe.Flat[recipe.Ingredient](nil), recipe.NewSequenceGenerator(), "Dough")

	secs := got.Sections()
	require.Len(t, secs, 1)
	assert.True(t, secs[0].Empty)
	assert.NotNil(t, secs[0].Items)
	assert.Empty(t, secs[0].Items)
}

func TestToSectionedAlreadySectioned(t *testing.T) {
	in := recipe.Sectioned([]recipe.Section[recipe.Ingredient]{{ID: "s", Name: "A", Order: recipe.Pos(0), Items: []recipe.Ingredient{ing("a", 0)}}})

	got := ToSectioned(in, recipe.NewFixedGenerator(), "ignored")

	require.Len(t, got.Sections(), 1)
	got.Sections()[0].Items[0].Name = "changed"
	assert.Equal(t, "a", in.Sections()[0].Items[0].Name)
}

func TestToFlatOrdersBySectionThenPosition(t *testing.T) {
	in := recipe.Sectioned([]recipe.Section[recipe.Ingredient]{
		{ID: "s2", Name: "Second", Order: recipe.Pos(1), Items: []recipe.Ingredient{ing("d", 1), ing("c", 0)}},
		{ID: "s1", Name: "First", Order: recipe.Pos(0), Items: []recipe.Ingredient{ing("a", 0), ing("b", 1)}},
	})

	got := IngredientsToFlat(in, recipe.NewFixedGenerator())

	require.Equal(t, recipe.ModeFlat, got.Mode())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got.Items()))
	assert.True(t, position.IsContiguous(got.Items()))
}

func TestToFlatEmptyYieldsPlaceholder(t *testing.T) {
	in := recipe.Sectioned([]recipe.Section[recipe.Ingredient]{{ID: "s", Name: "A", Order: recipe.Pos(0), Items: []recipe.Ingredient{}}})

	got := ToFlat(in, recipe.NewFixedGenerator("blank-1"))

	items := got.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "blank-1", items[0].ID)
	assert.Equal(t, 0, *items[0].Position)
	assert.Empty(t, items[0].Name)
}

func TestToFlatNoSections(t *testing.T) {
	got := ToFlat(recipe.Sectioned[recipe.Ingredient](nil), recipe.NewFixedGenerator("blank-1"))
	assert.Len(t, got.Items(), 1)
}

func TestInstructionsToFlatPlaceholderStep(t *testing.T) {
	got := InstructionsToFlat(recipe.Sectioned[recipe.Instruction](nil), recipe.NewFixedGenerator("blank-1"))

	items := got.Items()
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), items[0].Step)
}

func TestFlatSectionedFlatRoundTrip(t *testing.T) {
	orig := []recipe.Ingredient{ing("a", 0), ing("b", 1), ing("c", 2)}

	sectioned := IngredientsToSectioned(recipe.Flat(orig), recipe.NewSequenceGenerator())
	back := IngredientsToFlat(sectioned, recipe.NewFixedGenerator())

	assert.Equal(t, ids(orig), ids(back.Items()))
}

func TestSectionedFlatSectionedRoundTripKeepsIDs(t *testing.T) {
	in := recipe.Sectioned([]recipe.Section[recipe.Instruction]{
		{ID: "s1", Name: "Prep", Order: recipe.Pos(0), Items: []recipe.Instruction{{ID: "i1", Position: recipe.Pos(0), Step: 1}}},
		{ID: "s2", Name: "Cook", Order: recipe.Pos(1), Items: []recipe.Instruction{{ID: "i2", Position: recipe.Pos(0), Step: 2}, {ID: "i3", Position: recipe.Pos(1), Step: 3}}},
	})
	gen := recipe.NewSequenceGenerator()

	flat := InstructionsToFlat(in, gen)
	again := InstructionsToSectioned(flat, gen)

	secs := again.Sections()
	require.Len(t, secs, 1, "re-wrapped into one default section")
	assert.Equal(t, recipe.DefaultInstructionSection, secs[0].Name)
	assert.ElementsMatch(t, []string{"i1", "i2", "i3"}, ids(secs[0].Items))
}

func TestToggle(t *testing.T) {
	gen := recipe.NewSequenceGenerator()
	flat := recipe.Flat([]recipe.Ingredient{ing("a", 0)})

	sec := Toggle(flat, gen, "Main")
	assert.Equal(t, recipe.ModeSectioned, sec.Mode())
	assert.Equal(t, "Main", sec.Sections()[0].Name)

	back := Toggle(sec, gen, "Main")
	assert.Equal(t, recipe.ModeFlat, back.Mode())
	assert.Equal(t, []string{"a"}, ids(back.Items()))
}
