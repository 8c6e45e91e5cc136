package recipe

import "errors"

// Sentinel errors for layout access.
var (
	ErrWrongMode = errors.New("layout is in the other mode")
)
