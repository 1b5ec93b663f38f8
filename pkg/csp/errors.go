package csp

import (
	"fmt"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
)

// ErrTimeout is surfaced unchanged from backends configured with a deadline.
var ErrTimeout = sat.ErrTimeout

// DuplicateNameError reports a second declaration of an already registered
// variable name. It indicates a programming error in the encoder, not a
// property of the puzzle.
type DuplicateNameError string

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("variable %q is already declared", string(e))
}

// UnknownVariableError reports a constraint referencing a name that was never
// declared in the registry. Also a programming error.
type UnknownVariableError string

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("constraint references undeclared variable %q", string(e))
}

// BackendError wraps a failure of the satisfiability backend itself, as
// opposed to an unsatisfiable problem (which is a nil model, not an error).
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend failure: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
