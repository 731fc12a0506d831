// Released under an MIT license. See LICENSE.

// Package num provides fp's number type.
//
// A num is a value whose runtime type is only known to be numeric. It holds
// an exact rational and can be read either as an integer or as a float.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string.
func New(s string) (cell.I, bool) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, false
	}

	return Rat(v), true
}

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return Rat(big.NewRat(i, 1))
}

// Rat wraps a copy of the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(new(big.Rat).Set(r))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.rat().Cmp(To(c).rat()) == 0
}

// Float returns the nearest float64 value to the num n.
func (n *num) Float() float64 {
	f, _ := n.rat().Float64()

	return f
}

// Int returns the value of the num n as an int64, if it has an integer
// value that fits.
func (n *num) Int() (int64, bool) {
	r := n.rat()
	if !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}

	return r.Num().Int64(), true
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns a copy of the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return new(big.Rat).Set(n.rat())
}

// String returns the text of the num n.
func (n *num) String() string {
	r := n.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.FloatString(6)
}

// Type returns the type tag for the num n.
func (n *num) Type() *tag.T {
	return tag.Number
}

func (n *num) rat() *big.Rat {
	return (*big.Rat)(n)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
