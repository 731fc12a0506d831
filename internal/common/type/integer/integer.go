// Released under an MIT license. See LICENSE.

// Package integer provides fp's 64-bit integer type.
package integer

import (
	"strconv"

	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "int"

// T (integer) wraps Go's int64 type.
type T int64

type integer = T

// New creates a new integer cell.
func New(i int64) cell.I {
	v := integer(i)

	return &v
}

// Parse creates an integer from its decimal text.
func Parse(s string) (cell.I, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(i), nil
}

// Equal returns true if c is an integer with the same value.
func (i *integer) Equal(c cell.I) bool {
	return Is(c) && i.Int() == To(c).Int()
}

// Int returns the value of the integer i.
func (i *integer) Int() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *integer) Literal() string {
	return i.String()
}

// Name returns the type name for the integer i.
func (i *integer) Name() string {
	return name
}

// String returns the text of the integer i.
func (i *integer) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Type returns the type tag for the integer i.
func (i *integer) Type() *tag.T {
	return tag.Int
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type is a stringer.
	_ = common.Stringer(&t)
}
