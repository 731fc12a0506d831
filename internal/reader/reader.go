// Released under an MIT license. See LICENSE.

// Package reader encapsulates the fp lexer and parser.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/reader/lexer"
	"github.com/michaelmacinnis/fp/internal/reader/parser"
)

// ErrIncomplete is returned by Scan while a statement spans more lines.
var ErrIncomplete = parser.ErrIncomplete

// T (reader) accumulates lines until they form complete statements.
type T struct {
	known   func(string) bool
	name    string
	pending string
}

type reader = T

// New creates a new reader for name. Known reports whether a name is a command.
func New(name string, known func(string) bool) *T {
	return &T{known: known, name: name}
}

// Parse returns the statements in text.
func Parse(name, text string, known func(string) bool) ([]ast.Node, error) {
	l := lexer.New(name)
	l.Scan(text)

	var ns []ast.Node

	err := parser.New(func(n ast.Node) {
		ns = append(ns, n)
	}, l.Token, known).Parse()
	if err != nil {
		return nil, err
	}

	return ns, nil
}

// Pending returns true if the reader holds an incomplete statement.
func (r *reader) Pending() bool {
	return r.pending != ""
}

// Reset discards any incomplete statement.
func (r *reader) Reset() {
	r.pending = ""
}

// Scan adds line to any pending text and returns the statements if they
// are complete. If more lines are needed it returns ErrIncomplete.
func (r *reader) Scan(line string) ([]ast.Node, error) {
	text := r.pending + line + "\n"

	ns, err := Parse(r.name, text, r.known)
	if errors.Is(err, ErrIncomplete) {
		r.pending = text

		return nil, err
	}

	r.pending = ""

	return ns, err
}
