package recipe

// Document is the payload exchanged with persistence and read from files.
// Field names follow the wire format used by the web client.
type Document struct {
	ID                  string                 `json:"id" yaml:"id"`
	Title               string                 `json:"title" yaml:"title"`
	Ingredients         []Ingredient           `json:"ingredients" yaml:"ingredients"`
	IngredientSections  []Section[Ingredient]  `json:"ingredientSections,omitempty" yaml:"ingredientSections,omitempty"`
	Instructions        []Instruction          `json:"instructions" yaml:"instructions"`
	InstructionSections []Section[Instruction] `json:"instructionSections,omitempty" yaml:"instructionSections,omitempty"`
}

// NewDocument assembles a payload from two layouts.
func NewDocument(id, title string, ingredients Layout[Ingredient], instructions Layout[Instruction]) Document {
	d := Document{ID: id, Title: title}
	if ingredients.Mode() == ModeSectioned {
		d.IngredientSections = ingredients.Sections()
		d.Ingredients = []Ingredient{}
	} else {
		d.Ingredients = orEmpty(ingredients.Items())
	}
	if instructions.Mode() == ModeSectioned {
		d.InstructionSections = instructions.Sections()
		d.Instructions = []Instruction{}
	} else {
		d.Instructions = orEmpty(instructions.Items())
	}
	return d
}

// IngredientLayout picks the edit-state layout for ingredients.
// Any section present selects sectioned mode; flat items alongside
// sections are not part of the layout and must be carried by the caller.
func (d Document) IngredientLayout() Layout[Ingredient] {
	if len(d.IngredientSections) > 0 {
		return Sectioned(d.IngredientSections)
	}
	return Flat(d.Ingredients)
}

// InstructionLayout picks the edit-state layout for instructions.
func (d Document) InstructionLayout() Layout[Instruction] {
	if len(d.InstructionSections) > 0 {
		return Sectioned(d.InstructionSections)
	}
	return Flat(d.Instructions)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
