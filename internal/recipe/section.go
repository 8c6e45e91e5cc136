package recipe

// Default section names used when a flat list is wrapped into one section.
const (
	DefaultIngredientSection  = "Ingredients"
	DefaultInstructionSection = "Instructions"
)

// Section is a named, ordered grouping of items of one kind.
//
// Empty is a soft runtime flag set when the last item is removed. It is
// never serialised; a section without items is rejected at validation time.
type Section[T any] struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Order *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Items []T    `json:"items" yaml:"items"`
	Empty bool   `json:"-" yaml:"-"`
}

func (s *Section[T]) Key() string      { return s.ID }
func (s *Section[T]) SetKey(id string) { s.ID = id }

// Slot reports the stored order; false when unassigned.
func (s *Section[T]) Slot() (int, bool) {
	if s.Order == nil {
		return 0, false
	}
	return *s.Order, true
}

func (s *Section[T]) SetSlot(n int) { s.Order = Pos(n) }

// CloneSection deep-copies a section, cloning every item.
func CloneSection[T any, P Item[T]](s Section[T]) Section[T] {
	c := s
	c.Order = copyInt(s.Order)
	c.Items = CloneItems[T, P](s.Items)
	return c
}

// CloneItems deep-copies a slice of items. A nil slice stays nil.
func CloneItems[T any, P Item[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i := range items {
		out[i] = P(&items[i]).Clone()
	}
	return out
}
