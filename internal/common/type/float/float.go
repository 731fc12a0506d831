// Released under an MIT license. See LICENSE.

// Package float provides fp's 64-bit floating point type.
package float

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

type float = T

// New creates a new float cell.
func New(f float64) cell.I {
	v := float(f)

	return &v
}

// Parse creates a float from its text. NaN, Inf and -Inf are accepted.
func Parse(s string) (cell.I, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(f), nil
}

// Equal returns true if c is a float with the same value.
// Unlike ==, a NaN float is equal to any other NaN float.
func (f *float) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	a, b := f.Float(), To(c).Float()
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}

// Float returns the value of the float f.
func (f *float) Float() float64 {
	return float64(*f)
}

// Literal returns the literal representation of the float f.
func (f *float) Literal() string {
	v := f.Float()

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

// Name returns the type name for the float f.
func (f *float) Name() string {
	return name
}

// String returns the text of the float f.
func (f *float) String() string {
	return f.Literal()
}

// Type returns the type tag for the float f.
func (f *float) Type() *tag.T {
	return tag.Float
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t float

	// The float type is a cell.
	_ = cell.I(&t)

	// The float type has a literal representation.
	_ = literal.I(&t)

	// The float type is a stringer.
	_ = common.Stringer(&t)
}
