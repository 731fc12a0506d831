// Released under an MIT license. See LICENSE.

// Package ast provides the syntax tree produced by the fp parser.
//
// Every node can render itself back to source text. Closures keep their
// body as a node and use that text as their literal representation.
package ast

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/loc"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
)

// Node is any element of the syntax tree.
type Node interface {
	Source() *loc.T
	String() string
}

// Position is embedded by nodes to record where they start.
type Position struct {
	At *loc.T
}

// Source returns the location of the node.
func (p Position) Source() *loc.T {
	return p.At
}

// Access selects a field of a record, a column of a table or an element
// of a list.
type Access struct {
	Position

	Target Node
	Member string
	Index  int64
	Column bool // True if the member is selected by name.
}

func (a *Access) String() string {
	if a.Column {
		return a.Target.String() + "." + record.Key(a.Member)
	}

	return a.Target.String() + "." + strconv.FormatInt(a.Index, 10)
}

// Binary is an infix operation.
type Binary struct {
	Position

	Op          string
	Left, Right Node
}

func (b *Binary) String() string {
	return b.Left.String() + " " + b.Op + " " + b.Right.String()
}

// Block is a sequence of statements. Its value is the value of the last.
type Block struct {
	Position

	Statements []Node
}

func (b *Block) String() string {
	s := make([]string, len(b.Statements))
	for i, n := range b.Statements {
		s[i] = n.String()
	}

	return strings.Join(s, "; ")
}

// Closure is a closure literal.
type Closure struct {
	Position

	Params []string
	Body   *Block
}

func (c *Closure) String() string {
	if len(c.Params) == 0 {
		return "{ " + c.Body.String() + " }"
	}

	return "{|" + strings.Join(c.Params, ", ") + "| " + c.Body.String() + "}"
}

// Command is a command invocation within a pipeline.
type Command struct {
	Position

	Name string
	Args []Node
}

func (c *Command) String() string {
	s := []string{c.Name}
	for _, a := range c.Args {
		s = append(s, a.String())
	}

	return strings.Join(s, " ")
}

// Let binds the value of a pipeline to a name for the rest of a block.
type Let struct {
	Position

	Name  string
	Value *Pipeline
}

func (l *Let) String() string {
	return "let " + l.Name + " = " + l.Value.String()
}

// List is a list literal.
type List struct {
	Position

	Items []Node
}

func (l *List) String() string {
	s := make([]string, len(l.Items))
	for i, n := range l.Items {
		s[i] = n.String()
	}

	return "[" + strings.Join(s, ", ") + "]"
}

// Literal is a constant value.
type Literal struct {
	Position

	Value cell.I
}

func (l *Literal) String() string {
	return literal.String(l.Value)
}

// Paren is a parenthesized pipeline.
type Paren struct {
	Position

	Body *Pipeline
}

func (p *Paren) String() string {
	return "(" + p.Body.String() + ")"
}

// Pipeline is an expression whose value flows through zero or more commands.
// A pipeline that starts with a command has a nil Head.
type Pipeline struct {
	Position

	Head     Node
	Commands []*Command
}

func (p *Pipeline) String() string {
	var s []string
	if p.Head != nil {
		s = append(s, p.Head.String())
	}

	for _, c := range p.Commands {
		s = append(s, c.String())
	}

	return strings.Join(s, " | ")
}

// Range is a range literal. Next and To may be nil.
type Range struct {
	Position

	From, Next, To Node
	Exclusive      bool
}

func (r *Range) String() string {
	s := r.From.String()
	if r.Next != nil {
		s += ".." + r.Next.String()
	}

	s += ".."
	if r.Exclusive {
		s += "<"
	}

	if r.To != nil {
		s += r.To.String()
	}

	return s
}

// Record is a record literal.
type Record struct {
	Position

	Fields []Field
}

// Field is a name and the expression for its value.
type Field struct {
	Name  string
	Value Node
}

func (r *Record) String() string {
	s := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		s[i] = record.Key(f.Name) + ": " + f.Value.String()
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// Unary is a prefix operation.
type Unary struct {
	Position

	Op      string
	Operand Node
}

func (u *Unary) String() string {
	if u.Op == "not" {
		return "not " + u.Operand.String()
	}

	return u.Op + u.Operand.String()
}

// Variable is a reference to a variable.
type Variable struct {
	Position

	Name string
}

func (v *Variable) String() string {
	return "$" + v.Name
}
