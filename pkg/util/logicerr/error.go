package logicerr

import (
	"errors"
	"fmt"
)

// Error is wrapped to highlight the business logic errors: the ones caused
// by the caller's input, not by the environment.
var Error = errors.New("logical error")

// New returns simple error with a provided error message.
func New(msg string) error {
	return Wrap(errors.New(msg))
}

// Wrap wraps arbitrary error into a logical one.
func Wrap(err error) error {
	return fmt.Errorf("%w: %w", Error, err)
}

// Wrapf annotates kind with the formatted details and marks the result
// as a logical error. The result matches both Error and kind via errors.Is,
// as well as any error passed to format via %w.
func Wrapf(kind error, format string, args ...any) error {
	return Wrap(fmt.Errorf("%w: "+format, append([]any{kind}, args...)...))
}
