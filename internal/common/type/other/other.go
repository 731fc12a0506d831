// Released under an MIT license. See LICENSE.

// Package other provides fp's opaque value type.
//
// An other holds a value whose type has no dedicated fp variant (a date,
// binary data, a glob, ...). Its type name and text are preserved.
package other

import (
	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "other"

// T (other) is an opaque value with a named type.
type T struct {
	kind string
	text string
}

type other = T

// New creates an opaque value of the type named kind.
func New(kind, text string) cell.I {
	return &other{kind: kind, text: text}
}

// Equal returns true if c is an opaque value of the same type and text.
func (o *other) Equal(c cell.I) bool {
	return Is(c) && *o == *To(c)
}

// Literal returns the preserved text of the value o.
func (o *other) Literal() string {
	return o.text
}

// Name returns the preserved type name of the value o.
func (o *other) Name() string {
	return o.kind
}

// String returns the preserved text of the value o.
func (o *other) String() string {
	return o.text
}

// Type returns the type tag for the value o.
func (o *other) Type() *tag.T {
	return tag.Named(o.kind)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t other

	// The other type is a cell.
	_ = cell.I(&t)

	// The other type has a literal representation.
	_ = literal.I(&t)

	// The other type is a stringer.
	_ = common.Stringer(&t)
}
