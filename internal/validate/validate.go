// Package validate applies structural acceptance rules to recipe items,
// sections and whole documents before they are handed to persistence.
//
// Validation is pure and never mutates its input. Every entry point
// returns all failures found in one pass; nothing short-circuits.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Validation error codes (E200-E299)
const (
	// Identity (E201-E202)
	ErrIDMissing   = "E201" // id is required
	ErrIDMalformed = "E202" // id is not a canonical UUID

	// Text fields (E203-E204)
	ErrTextEmpty      = "E203" // required text is empty
	ErrTextWhitespace = "E204" // required text is only whitespace

	// Numeric fields (E205-E209)
	ErrNegative    = "E205" // value must be >= 0
	ErrNotPositive = "E206" // value must be > 0
	ErrNotInteger  = "E207" // value must be a whole number
	ErrRankMissing = "E208" // position/order not assigned
	ErrNotFinite   = "E209" // NaN or infinity

	// Sections and documents (E210-E219)
	ErrSectionEmpty     = "E210" // section has no items
	ErrNoIngredients    = "E211" // document has no ingredient
	ErrNoInstructions   = "E212" // document has no instruction
	ErrDuplicateSection = "E213" // section id used twice
	ErrDuplicateItem    = "E214" // item id used twice
	ErrTitleEmpty       = "E215" // document title empty
)

// ValidationError is one rule violation at a field path.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidateID checks that id is present and a canonical
// 8-4-4-4-12 hex UUID. Braced and urn: forms are rejected.
func ValidateID(id, path string) []ValidationError {
	if id == "" {
		return []ValidationError{{
			Field:   path,
			Message: "id is required",
			Code:    ErrIDMissing,
		}}
	}
	if len(id) != 36 {
		return []ValidationError{malformedID(id, path)}
	}
	if _, err := uuid.Parse(id); err != nil {
		return []ValidationError{malformedID(id, path)}
	}
	return nil
}

func malformedID(id, path string) ValidationError {
	return ValidationError{
		Field:   path,
		Message: fmt.Sprintf("id %q is not a valid identifier", id),
		Code:    ErrIDMalformed,
	}
}

// requiredText rejects empty and whitespace-only values as distinct failures.
func requiredText(value, path, label string) []ValidationError {
	if value == "" {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("%s is required", label),
			Code:    ErrTextEmpty,
		}}
	}
	if strings.TrimSpace(value) == "" {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("%s must not be only whitespace", label),
			Code:    ErrTextWhitespace,
		}}
	}
	return nil
}

// rank checks a required position or order.
func rank(v *int, path, label string) []ValidationError {
	if v == nil {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("%s is required", label),
			Code:    ErrRankMissing,
		}}
	}
	if *v < 0 {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("%s must not be negative, got %d", label, *v),
			Code:    ErrNegative,
		}}
	}
	return nil
}

// nonNegative checks an optional amount-like number.
func nonNegative(v float64, path, label string) []ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []ValidationError{notFinite(path, label)}
	}
	if v < 0 {
		return []ValidationError{{
			Field:   path,
			Message: fmt.Sprintf("%s must not be negative, got %g", label, v),
			Code:    ErrNegative,
		}}
	}
	return nil
}

// positiveInt checks a step- or duration-like number. Non-integer and
// non-positive values are reported separately so both surface at once.
func positiveInt(v float64, path, label string) []ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []ValidationError{notFinite(path, label)}
	}
	var errs []ValidationError
	if v <= 0 {
		errs = append(errs, ValidationError{
			Field:   path,
			Message: fmt.Sprintf("%s must be greater than zero, got %g", label, v),
			Code:    ErrNotPositive,
		})
	}
	if v != math.Trunc(v) {
		errs = append(errs, ValidationError{
			Field:   path,
			Message: fmt.Sprintf("%s must be a whole number, got %g", label, v),
			Code:    ErrNotInteger,
		})
	}
	return errs
}

func notFinite(path, label string) ValidationError {
	return ValidationError{
		Field:   path,
		Message: fmt.Sprintf("%s must be a finite number", label),
		Code:    ErrNotFinite,
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
