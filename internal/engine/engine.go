// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed fp pipelines.
package engine

import (
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/common/struct/loc"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/engine/boot"
	"github.com/michaelmacinnis/fp/internal/engine/commands"
	"github.com/michaelmacinnis/fp/internal/reader"
)

// ErrEval is wrapped by every error the engine reports for a pipeline.
var ErrEval = errors.New("evaluation failed")

// Error is an evaluation failure and the location of the code that caused it.
type Error struct {
	Source *loc.T
	Err    error
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Err.Error()
}

// Is makes errors.Is(err, ErrEval) true for every Error.
func (e *Error) Is(target error) bool {
	return target == ErrEval
}

func (e *Error) Unwrap() error {
	return e.Err
}

// T (engine) is a facade in front of the machinery for evaluating fp code.
type T struct {
	log      *slog.Logger
	patterns map[string]*regexp.Regexp
	top      *scope
}

type engine = T

// New creates a new T. A nil logger means slog.Default().
func New(l *slog.Logger) *T {
	if l == nil {
		l = slog.Default()
	}

	return &T{
		log:      l,
		patterns: map[string]*regexp.Regexp{},
	}
}

// Boot runs the prelude.
func (e *engine) Boot() error {
	_, err := e.Run("boot", boot.Script())

	return err
}

// Define binds name to v for all code run afterwards.
func (e *engine) Define(name string, v cell.I) {
	e.top = e.top.bind(name, v)
}

// EvalClosure runs the closure c.
//
// Arguments bind to the closure's parameters by position. Missing arguments
// are null and extra arguments are ignored. The current value is bound to
// $in and, for row conditions, to $it.
func (e *engine) EvalClosure(c *closure.T, args []cell.I, current cell.I) (cell.I, error) {
	e.log.Debug("callback", "id", c.ID().String(), "params", c.Params(), "row", c.Row())

	s, _ := c.Scope().(*scope)

	s = s.bind("in", current)
	if c.Row() {
		s = s.bind("it", current)
	}

	for i, p := range c.Params() {
		var v cell.I = nothing.Null
		if i < len(args) {
			v = args[i]
		}

		s = s.bind(p, v)
	}

	n, ok := c.Body().(ast.Node)
	if !ok {
		return nil, errForeign
	}

	return e.node(s, n)
}

// Evaluate evaluates the statement n. Top-level let bindings persist.
func (e *engine) Evaluate(n ast.Node) (cell.I, error) {
	v, s, err := e.statements(e.top, []ast.Node{n})
	if err != nil {
		return nil, err
	}

	e.top = s

	return v, nil
}

// Known returns true if name is a command or the first word of one.
func (e *engine) Known(name string) bool {
	if _, ok := lookup(name); ok {
		return true
	}

	for _, n := range names() {
		if strings.HasPrefix(n, name+" ") {
			return true
		}
	}

	return false
}

// Names returns the names of all commands, sorted.
func (e *engine) Names() []string {
	ns := names()
	sort.Strings(ns)

	return ns
}

// Run parses and evaluates text. It returns the value of the last statement.
func (e *engine) Run(label, text string) (cell.I, error) {
	ns, err := reader.Parse(label, text, e.Known)
	if err != nil {
		return nil, err
	}

	var v cell.I = nothing.Null

	for _, n := range ns {
		e.log.Debug("evaluate", "statement", n.String(), "at", n.Source().String())

		v, err = e.Evaluate(n)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func lookup(name string) (*commands.Command, bool) {
	if c, ok := commands.Lookup(name); ok {
		return c, true
	}

	c, ok := builtins[name]

	return c, ok
}

func names() []string {
	ns := commands.Names()
	for n := range builtins {
		ns = append(ns, n)
	}

	return ns
}

// fail locates err at the node n unless it is already located.
func fail(n ast.Node, err error) error {
	if _, ok := err.(*Error); ok { //nolint:errorlint
		return err
	}

	return &Error{Source: n.Source(), Err: err}
}
