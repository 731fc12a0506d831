// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/engine/commands"
)

var (
	errMissing    = errors.New("missing argument")
	errNotClosure = errors.New("not a closure")
)

// invocation binds the argument nodes of one command invocation. Nothing
// is evaluated until the command asks for it and each argument is
// evaluated at most once.
type invocation struct {
	cmd    *commands.Command
	engine *engine
	errs   map[int]error
	nodes  []ast.Node
	scope  *scope
	values map[int]cell.I
}

func newCall(e *engine, s *scope, c *commands.Command, nodes []ast.Node) *invocation {
	return &invocation{
		cmd:    c,
		engine: e,
		errs:   map[int]error{},
		nodes:  nodes,
		scope:  s,
		values: map[int]cell.I{},
	}
}

// Closure returns argument n as a closure.
//
// A closure literal is used as is. In a row condition position a variable
// bound to a closure is that closure and any other argument becomes a
// closure over the expression. Any other argument must evaluate to a
// closure.
func (i *invocation) Closure(n int) (*closure.T, error) {
	node, err := i.node(n)
	if err != nil {
		return nil, err
	}

	if c, ok := node.(*ast.Closure); ok {
		return closure.New(c.Params, c.Body, i.scope), nil
	}

	if i.shape(n) == commands.RowCondition {
		if c, ok := i.variable(node); ok {
			return c, nil
		}

		return closure.Row(node, i.scope), nil
	}

	v, err := i.Value(n)
	if err != nil {
		return nil, err
	}

	if !closure.Is(v) {
		return nil, fmt.Errorf("%w: %s", errNotClosure, v.Name())
	}

	return closure.To(v), nil
}

// Value returns the value of argument n.
func (i *invocation) Value(n int) (cell.I, error) {
	if v, ok := i.values[n]; ok {
		return v, nil
	}

	if err, ok := i.errs[n]; ok {
		return nil, err
	}

	node, err := i.node(n)
	if err != nil {
		return nil, err
	}

	v, err := i.engine.node(i.scope, node)
	if err != nil {
		i.errs[n] = err

		return nil, err
	}

	i.values[n] = v

	return v, nil
}

// variable returns the closure bound to the variable node, if any.
func (i *invocation) variable(node ast.Node) (*closure.T, bool) {
	v, ok := node.(*ast.Variable)
	if !ok {
		return nil, false
	}

	c, ok := i.scope.Lookup(v.Name)
	if !ok || !closure.Is(c) {
		return nil, false
	}

	return closure.To(c), true
}

func (i *invocation) node(n int) (ast.Node, error) {
	if n < 0 || n >= len(i.nodes) {
		return nil, fmt.Errorf("%w: %d", errMissing, n+1)
	}

	return i.nodes[n], nil
}

func (i *invocation) shape(n int) commands.Shape {
	if n < len(i.cmd.Required) {
		return i.cmd.Required[n].Shape
	}

	return commands.Any
}
