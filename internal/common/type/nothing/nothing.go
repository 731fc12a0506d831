// Released under an MIT license. See LICENSE.

// Package nothing provides fp's absent value.
package nothing

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "nothing"

//nolint:gochecknoglobals
var (
	// Null is the only nothing. It marks the absence of a value.
	Null cell.I = &nothing{}
)

// T (nothing) is the type of Null.
type T struct {
	_ byte // Null needs a unique address.
}

type nothing = T

// Equal returns true if c is Null.
func (n *nothing) Equal(c cell.I) bool {
	return c == Null
}

// Literal returns the literal representation of Null.
func (n *nothing) Literal() string {
	return "null"
}

// Name returns the name of the nothing type.
func (n *nothing) Name() string {
	return name
}

// Type returns the type tag for Null.
func (n *nothing) Type() *tag.T {
	return tag.Nothing
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t nothing

	// The nothing type is a cell.
	_ = cell.I(&t)

	// The nothing type has a literal representation.
	_ = literal.I(&t)
}
