// Released under an MIT license. See LICENSE.

// Package validate checks the arguments and input passed to commands.
package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is wrapped by every argument resolution failure.
	ErrArgument = errors.New("argument resolution failed")

	// ErrInput is wrapped when a command receives input it does not accept.
	ErrInput = errors.New("unsupported input")
)

// ArgumentError records which argument of which command could not be bound.
type ArgumentError struct {
	Command string
	Index   int
	Err     error
}

// Argument creates an ArgumentError for argument n of the command cmd.
func Argument(cmd string, n int, err error) error {
	return &ArgumentError{Command: cmd, Index: n, Err: err}
}

func (e *ArgumentError) Error() string {
	s := fmt.Sprintf("%s: argument %d", e.Command, e.Index+1)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}

	return s
}

// Is makes errors.Is(err, ErrArgument) true for every ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Fixed returns an error unless passed is between min and max, inclusive.
func Fixed(cmd string, passed, min, max int) error {
	if passed >= min && passed <= max {
		return nil
	}

	expected := Count(max, "argument", "s")
	if passed < min {
		expected = Count(min, "argument", "s")
	}

	return Argument(cmd, passed, fmt.Errorf("expected %s, passed %d", expected, passed))
}

// Input creates an error for the command cmd receiving input named kind.
func Input(cmd, kind string) error {
	return fmt.Errorf("%w: %s does not accept %s", ErrInput, cmd, kind)
}

func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
