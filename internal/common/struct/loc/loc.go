// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens and
// the syntax built from them.
package loc

import (
	"fmt"
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

// Errorf creates an error prefixed with the location l.
func (l *loc) Errorf(format string, args ...any) error {
	return &Error{Source: *l, msg: fmt.Sprintf(format, args...)}
}

func (l *loc) String() string {
	if l == nil {
		return "-"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}

// Error is an error that occurred at a known location.
type Error struct {
	Source T
	msg    string
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.msg
}
