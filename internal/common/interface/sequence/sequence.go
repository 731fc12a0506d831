// Released under an MIT license. See LICENSE.

// Package sequence defines the interface for fp values that produce items lazily.
package sequence

import (
	"iter"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
)

// I (sequence) is anything that can be iterated, once, in source order.
//
// Implementations must not materialize the whole sequence up front.
// Returning false from yield stops production.
type I interface {
	All() iter.Seq[cell.I]
}

// Of returns the items of c if c is a sequence.
func Of(c cell.I) (iter.Seq[cell.I], bool) {
	s, ok := c.(I)
	if !ok {
		return nil, false
	}

	return s.All(), true
}
