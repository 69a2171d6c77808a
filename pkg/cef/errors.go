package cef

import (
	"errors"
	"fmt"
)

// ErrInvalidEvent matches every *ValidationError through errors.Is.
var ErrInvalidEvent = errors.New("invalid cef event")

// ValidationError names the field that violated an invariant, either when an
// entity is constructed or when a field cannot be rendered in its context.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidEvent.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEvent
}
