// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/list"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/rng"
	"github.com/michaelmacinnis/fp/internal/common/type/table"
	"github.com/michaelmacinnis/fp/internal/common/validate"
)

var (
	errColumn   = errors.New("no such column")
	errCommand  = errors.New("unknown command")
	errForeign  = errors.New("closure was not created by this engine")
	errIndex    = errors.New("index out of range")
	errStep     = errors.New("range step cannot be zero")
	errType     = errors.New("type mismatch")
	errVariable = errors.New("unknown variable")
)

func (e *engine) node(s *scope, n ast.Node) (cell.I, error) {
	switch n := n.(type) {
	case *ast.Access:
		return e.access(s, n)
	case *ast.Binary:
		return e.binary(s, n)
	case *ast.Block:
		v, _, err := e.statements(s, n.Statements)

		return v, err
	case *ast.Closure:
		return closure.New(n.Params, n.Body, s), nil
	case *ast.List:
		return e.list(s, n)
	case *ast.Literal:
		return n.Value, nil
	case *ast.Paren:
		return e.pipeline(s, n.Body)
	case *ast.Pipeline:
		return e.pipeline(s, n)
	case *ast.Range:
		return e.rng(s, n)
	case *ast.Record:
		return e.record(s, n)
	case *ast.Unary:
		return e.unary(s, n)
	case *ast.Variable:
		return variable(s, n)
	}

	return nil, fail(n, fmt.Errorf("%w: cannot evaluate %T", errType, n))
}

// statements evaluates the statements ns in order. A let extends the scope
// for the statements that follow it and has the value null.
func (e *engine) statements(s *scope, ns []ast.Node) (cell.I, *scope, error) {
	var v cell.I = nothing.Null

	for _, n := range ns {
		var err error

		if l, ok := n.(*ast.Let); ok {
			v, err = e.pipeline(s, l.Value)
			if err != nil {
				return nil, nil, err
			}

			s = s.bind(l.Name, v)
			v = nothing.Null

			continue
		}

		v, err = e.node(s, n)
		if err != nil {
			return nil, nil, err
		}
	}

	return v, s, nil
}

// pipeline passes the value of the head through each command. A pipeline
// that starts with a command receives $in, or null if $in is unbound.
func (e *engine) pipeline(s *scope, p *ast.Pipeline) (cell.I, error) {
	var (
		v   cell.I = nothing.Null
		err error
	)

	if p.Head != nil {
		v, err = e.node(s, p.Head)
		if err != nil {
			return nil, err
		}
	} else if in, ok := s.Lookup("in"); ok {
		v = in
	}

	for _, c := range p.Commands {
		v, err = e.command(s, c, v)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (e *engine) command(s *scope, n *ast.Command, input cell.I) (cell.I, error) {
	c, ok := lookup(n.Name)
	if !ok || c.Run == nil {
		return nil, fail(n, fmt.Errorf("%w: %s", errCommand, n.Name))
	}

	required := len(c.Required)

	err := validate.Fixed(c.Name, len(n.Args), required, required)
	if err != nil {
		return nil, fail(n, err)
	}

	if !c.Accepts(input.Type()) {
		return nil, fail(n, validate.Input(c.Name, input.Type().String()))
	}

	v, err := c.Run(e, newCall(e, s, c, n.Args), input)
	if err != nil {
		return nil, fail(n, err)
	}

	return v, nil
}

func (e *engine) access(s *scope, n *ast.Access) (cell.I, error) {
	v, err := e.node(s, n.Target)
	if err != nil {
		return nil, err
	}

	if n.Column {
		v, err = column(v, n.Member)
	} else {
		v, err = index(v, n.Index)
	}

	if err != nil {
		return nil, fail(n, err)
	}

	return v, nil
}

func (e *engine) binary(s *scope, n *ast.Binary) (cell.I, error) {
	l, err := e.node(s, n.Left)
	if err != nil {
		return nil, err
	}

	if n.Op == "and" || n.Op == "or" {
		if !boolean.Is(l) {
			return nil, fail(n, mismatch(n.Op, l))
		}

		if boolean.IsTrue(l) == (n.Op == "or") {
			return l, nil
		}
	}

	r, err := e.node(s, n.Right)
	if err != nil {
		return nil, err
	}

	v, err := e.operate(n.Op, l, r)
	if err != nil {
		return nil, fail(n, err)
	}

	return v, nil
}

func (e *engine) list(s *scope, n *ast.List) (cell.I, error) {
	items := make([]cell.I, len(n.Items))

	for i, item := range n.Items {
		v, err := e.node(s, item)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	if t, ok := table.FromCells(items); ok {
		return t, nil
	}

	return list.New(items...), nil
}

func (e *engine) record(s *scope, n *ast.Record) (cell.I, error) {
	fs := make([]record.Field, len(n.Fields))

	for i, f := range n.Fields {
		v, err := e.node(s, f.Value)
		if err != nil {
			return nil, err
		}

		fs[i] = record.Field{Name: f.Name, Value: v}
	}

	return record.New(fs...), nil
}

func (e *engine) rng(s *scope, n *ast.Range) (cell.I, error) {
	bound := func(b ast.Node) (int64, error) {
		v, err := e.node(s, b)
		if err != nil {
			return 0, err
		}

		if !integer.Is(v) {
			return 0, fail(b, fmt.Errorf("%w: range bounds must be int, not %s", errType, v.Name()))
		}

		return integer.To(v).Int(), nil
	}

	from, err := bound(n.From)
	if err != nil {
		return nil, err
	}

	var step int64

	if n.Next != nil {
		next, err := bound(n.Next)
		if err != nil {
			return nil, err
		}

		step = next - from
		if step == 0 {
			return nil, fail(n, errStep)
		}
	}

	if n.To == nil {
		return rng.Unbounded(from, step), nil
	}

	to, err := bound(n.To)
	if err != nil {
		return nil, err
	}

	return rng.New(from, step, to, !n.Exclusive), nil
}

func (e *engine) unary(s *scope, n *ast.Unary) (cell.I, error) {
	v, err := e.node(s, n.Operand)
	if err != nil {
		return nil, err
	}

	if n.Op == "not" {
		if !boolean.Is(v) {
			return nil, fail(n, mismatch(n.Op, v))
		}

		return boolean.Bool(!boolean.IsTrue(v)), nil
	}

	v, err = negate(v)
	if err != nil {
		return nil, fail(n, err)
	}

	return v, nil
}

func variable(s *scope, n *ast.Variable) (cell.I, error) {
	if v, ok := s.Lookup(n.Name); ok {
		return v, nil
	}

	if n.Name == "in" {
		return nothing.Null, nil
	}

	return nil, fail(n, fmt.Errorf("%w: $%s", errVariable, n.Name))
}

func column(v cell.I, name string) (cell.I, error) {
	switch {
	case record.Is(v):
		if f, ok := record.To(v).Get(name); ok {
			return f, nil
		}
	case table.Is(v):
		rows := table.To(v).Rows()
		vs := make([]cell.I, len(rows))

		for i, r := range rows {
			f, ok := r.Get(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s in row %d", errColumn, name, i)
			}

			vs[i] = f
		}

		return list.New(vs...), nil
	default:
		return nil, fmt.Errorf("%w: cannot select %s from %s", errType, name, v.Name())
	}

	return nil, fmt.Errorf("%w: %s", errColumn, name)
}

func index(v cell.I, i int64) (cell.I, error) {
	switch {
	case list.Is(v):
		if item, ok := list.To(v).Get(i); ok {
			return item, nil
		}
	case table.Is(v):
		rows := table.To(v).Rows()
		if i >= 0 && i < int64(len(rows)) {
			return rows[i], nil
		}
	default:
		return nil, fmt.Errorf("%w: cannot index %s", errType, v.Name())
	}

	return nil, fmt.Errorf("%w: %d", errIndex, i)
}
