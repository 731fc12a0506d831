// Released under an MIT license. See LICENSE.

// Package evaluator defines the host capability used to run callbacks.
package evaluator

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
)

// I (evaluator) runs a closure's body.
//
// The closure receives args positionally and current as the implicit
// current value. The host decides which of the two the body refers to.
// Errors raised by the body are returned as they are.
type I interface {
	EvalClosure(c *closure.T, args []cell.I, current cell.I) (cell.I, error)
}
