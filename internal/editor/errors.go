package editor

import (
	"errors"
	"fmt"

	"github.com/roach88/cookbook/internal/validate"
)

// Sentinel errors.
var (
	ErrUnknownScope = errors.New("unknown scope")
	ErrWrongMode    = errors.New("operation not available in the current mode")
	ErrItemNotFound = errors.New("item not found")
	ErrUnknownList  = errors.New("unknown list")
)

// InvalidError is returned by Save when the document fails validation.
// Nothing is persisted.
type InvalidError struct {
	Errors []validate.ValidationError
}

// Error implements the error interface.
func (e *InvalidError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("document invalid: %s", e.Errors[0].Error())
	}
	return fmt.Sprintf("document invalid: %d errors, first: %s", len(e.Errors), e.Errors[0].Error())
}
