// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
)

// scope is an immutable chain of bindings. Binding a name creates a new
// link so closures keep seeing the scope they were created in.
// A nil *scope is the empty scope.
type scope struct {
	parent *scope
	name   string
	value  cell.I
}

func (s *scope) bind(name string, v cell.I) *scope {
	return &scope{parent: s, name: name, value: v}
}

// Lookup returns the innermost value bound to name.
func (s *scope) Lookup(name string) (cell.I, bool) {
	for ; s != nil; s = s.parent {
		if s.name == name {
			return s.value, true
		}
	}

	return nil, false
}

// A compiler-checked list of interfaces the engine's types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		e engine
		i invocation
		s scope
	)

	// The engine can run closures for commands.
	_ = evaluator.I(&e)

	// An invocation answers argument requests.
	_ = call.I(&i)

	// A scope can be captured by a closure.
	_ = closure.Scope(&s)
}
