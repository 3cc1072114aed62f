package parser

import "fmt"

// InputError indicates the caller supplied text the parser cannot work
// with. It is a terminal error; retrying with the same input will fail
// the same way.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NewInputError creates an InputError with the given reason.
func NewInputError(reason string) *InputError {
	return &InputError{Reason: reason}
}
