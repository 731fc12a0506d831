// Released under an MIT license. See LICENSE.

// Package call defines the host capability used to request command arguments.
package call

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
)

// I (call) gives a command access to the arguments of its invocation.
//
// Closure returns an error if argument n is not a callback. Value returns
// an error if argument n cannot be produced as a plain value.
type I interface {
	Closure(n int) (*closure.T, error)
	Value(n int) (cell.I, error)
}
