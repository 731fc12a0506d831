package commands

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
)

var errMissing = errors.New("missing argument")

// fn is a closure body implemented in Go.
type fn func(x cell.I) (cell.I, error)

func (f fn) String() string {
	return fmt.Sprintf("fn@%p", f)
}

// host evaluates fn bodies and counts evaluations.
type host struct {
	calls int
}

func (h *host) EvalClosure(c *closure.T, args []cell.I, current cell.I) (cell.I, error) {
	h.calls++

	f, ok := c.Body().(fn)
	if !ok {
		return nil, fmt.Errorf("unexpected body %v", c.Body())
	}

	if len(args) != 1 || args[0] != current {
		return nil, fmt.Errorf("expected current as the only argument, got %v", args)
	}

	return f(current)
}

// args answers argument requests from a fixed list.
type args struct {
	closures int
	values   int

	items []cell.I
}

func with(items ...cell.I) *args {
	return &args{items: items}
}

func (a *args) Closure(n int) (*closure.T, error) {
	a.closures++

	if n >= len(a.items) {
		return nil, errMissing
	}

	c, ok := a.items[n].(*closure.T)
	if !ok {
		return nil, errors.New("not a closure")
	}

	return c, nil
}

func (a *args) Value(n int) (cell.I, error) {
	a.values++

	if n >= len(a.items) {
		return nil, errMissing
	}

	return a.items[n], nil
}

func callback(f fn) *closure.T {
	return closure.New([]string{"x"}, f, nil)
}
