// Package recipe defines the data shapes shared by the position engine.
//
// There are two item kinds, Ingredient and Instruction. Both carry an id and
// a zero-based position inside their scope. A scope is either the flat
// top-level list of a recipe, the items of one Section, or the section list
// itself (ranked by Section.Order).
//
// A recipe's list of one kind is held in edit state as a Layout, a tagged
// variant that is either Flat(items) or Sectioned(sections). Document is
// the serialisable payload handed to persistence; unlike Layout it can carry
// both representations at once, which is what validation has to inspect.
//
// This package has no dependencies on the rest of the module.
package recipe
