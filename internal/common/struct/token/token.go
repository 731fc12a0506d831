// Released under an MIT license. See LICENSE.

// Package token is shared by the fp lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/fp/internal/common/struct/loc"
)

// Class is a token's type.
// Single character tokens use the character itself as their class.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Bare Class = unicode.MaxRune + iota
	DoubleQuoted
	Number
	Operator
	Range
	SingleQuoted
	Variable
)

// New creates a new token.
func New(class Class, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Bare:
		return "Bare"
	case DoubleQuoted:
		return "DoubleQuoted"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Range:
		return "Range"
	case SingleQuoted:
		return "SingleQuoted"
	case Variable:
		return "Variable"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the class of the token t.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// IsWord returns true if t is a bare word with the value v.
func (t *token) IsWord(v string) bool {
	return t.Is(Bare) && t.value == v
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
