package recipe

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Ingredient is an ingredient-kind item.
type Ingredient struct {
	ID       string   `json:"id" yaml:"id"`
	Position *int     `json:"position,omitempty" yaml:"position,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Amount   *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit     string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Notes    string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Instruction is an instruction-kind item.
// Step and Duration are numbers rather than ints so that a fractional value
// read from a payload survives until validation can report it.
type Instruction struct {
	ID       string   `json:"id" yaml:"id"`
	Position *int     `json:"position,omitempty" yaml:"position,omitempty"`
	Step     float64  `json:"step" yaml:"step"`
	Content  string   `json:"content" yaml:"content"`
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty"` // minutes
}

// Item is the constraint satisfied by pointers to the item kinds.
// Generic code is written as func F[T any, P Item[T]](items []T).
type Item[T any] interface {
	*T
	Key() string
	SetKey(id string)
	Slot() (int, bool)
	SetSlot(n int)
	ClearSlot()
	Clone() T
}

// isItem compiles only when P satisfies Item[T].
func isItem[T any, P Item[T]]() {}

var (
	_ = isItem[Ingredient, *Ingredient]
	_ = isItem[Instruction, *Instruction]
)

// Pos returns a pointer to n, for building positions and orders.
func Pos(n int) *int {
	return &n
}

// CleanName trims surrounding whitespace and NFC-normalises a label.
func CleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (i *Ingredient) Key() string      { return i.ID }
func (i *Ingredient) SetKey(id string) { i.ID = id }

// Slot reports the stored position; false when unassigned.
func (i *Ingredient) Slot() (int, bool) {
	if i.Position == nil {
		return 0, false
	}
	return *i.Position, true
}

// SetSlot assigns a fresh position so clones never share the pointer.
func (i *Ingredient) SetSlot(n int) { i.Position = Pos(n) }

// ClearSlot marks the position unassigned.
func (i *Ingredient) ClearSlot() { i.Position = nil }

// Clone returns a deep copy.
func (i *Ingredient) Clone() Ingredient {
	c := *i
	c.Position = copyInt(i.Position)
	c.Amount = copyFloat(i.Amount)
	return c
}

func (s *Instruction) Key() string      { return s.ID }
func (s *Instruction) SetKey(id string) { s.ID = id }

// Slot reports the stored position; false when unassigned.
func (s *Instruction) Slot() (int, bool) {
	if s.Position == nil {
		return 0, false
	}
	return *s.Position, true
}

func (s *Instruction) SetSlot(n int) { s.Position = Pos(n) }
func (s *Instruction) ClearSlot()    { s.Position = nil }

// Clone returns a deep copy.
func (s *Instruction) Clone() Instruction {
	c := *s
	c.Position = copyInt(s.Position)
	c.Duration = copyFloat(s.Duration)
	return c
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
