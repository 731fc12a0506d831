// Released under an MIT license. See LICENSE.

// Package continuation provides the deferred argument of else and then.
//
// A continuation is either a plain value or a callback. It is built from a
// command's argument but not evaluated until the command decides the value
// is needed.
package continuation

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
)

// T (continuation) holds either a value or a callback, never both.
type T struct {
	callback *closure.T
	value    cell.I
}

type continuation = T

// Callback creates a continuation that runs the closure c.
func Callback(c *closure.T) *continuation {
	return &continuation{callback: c}
}

// Direct creates a continuation that yields v.
func Direct(v cell.I) *continuation {
	return &continuation{value: v}
}

// Resolve binds argument n of the call c.
//
// The argument is requested as a closure first and as a plain value second.
// If neither request succeeds the error from the second is returned.
func Resolve(c call.I, n int) (*continuation, error) {
	if cb, err := c.Closure(n); err == nil {
		return Callback(cb), nil
	}

	v, err := c.Value(n)
	if err != nil {
		return nil, err
	}

	return Direct(v), nil
}

// Evaluate produces the continuation's value.
//
// A callback receives current both as its single positional argument and
// as the implicit current value. Errors from the callback are returned
// unchanged.
func (k *continuation) Evaluate(e evaluator.I, current cell.I) (cell.I, error) {
	if k.callback == nil {
		return k.value, nil
	}

	return e.EvalClosure(k.callback, []cell.I{current}, current)
}
