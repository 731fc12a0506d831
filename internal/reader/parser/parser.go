// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for fp pipelines.
package parser

import (
	"errors"
	"math"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/common/struct/loc"
	"github.com/michaelmacinnis/fp/internal/common/struct/token"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/duration"
	"github.com/michaelmacinnis/fp/internal/common/type/filesize"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

// ErrIncomplete is returned when the input ends before a statement does.
var ErrIncomplete = errors.New("incomplete input")

// T holds the state of the parser.
type T struct {
	ahead []*token.T        // Lookahead.
	emit  func(ast.Node)    // Function to call to emit a parsed statement.
	item  func() *token.T   // Function to call to get another token.
	known func(string) bool // Reports whether a name is a command.
	last  *loc.T            // Location of the most recent token.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of statements.
func New(emit func(ast.Node), item func() *token.T, known func(string) bool) *T {
	return &T{emit: emit, item: item, known: known}
}

// Parse consumes tokens and emits statements until there are no more tokens.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	for {
		p.separators()

		t := p.peek()
		if t == nil {
			return nil
		}

		if !p.startsStatement(t) {
			p.unexpected(t)
		}

		p.emit(p.statement())

		if t := p.peek(); t != nil && !t.Is('\n', ';') {
			p.unexpected(t)
		}
	}
}

func (p *T) consume() *token.T {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	p.ahead = p.ahead[1:]

	return t
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		p.unexpected(t)
	}

	return p.consume()
}

func (p *T) newlines() {
	for p.peek().Is('\n') {
		p.consume()
	}
}

// peek returns the next token without consuming it.
func (p *T) peek() *token.T {
	return p.peekAt(0)
}

// peekAt returns the token n places ahead without consuming anything.
func (p *T) peekAt(n int) *token.T {
	for len(p.ahead) <= n {
		t := p.item()
		if t == nil {
			return nil
		}

		if t.Is(token.Error) {
			panic(t.Source().Errorf("%s", t.Value()))
		}

		p.last = t.Source()
		p.ahead = append(p.ahead, t)
	}

	return p.ahead[n]
}

func (p *T) separators() {
	for p.peek().Is('\n', ';') {
		p.consume()
	}
}

func (p *T) startsStatement(t *token.T) bool {
	return !t.Is(')', ']', '}', ',', ':', '|', '=', token.Range)
}

func (p *T) unexpected(t *token.T) {
	if t == nil {
		panic(ErrIncomplete)
	}

	panic(t.Source().Errorf("unexpected '%s'", t.Value()))
}

// T state functions.

// <block> ::= <statement> ((';' | '\n') <statement>)* .
func (p *T) block(end token.Class) *ast.Block {
	b := &ast.Block{Position: ast.Position{At: p.last}}

	for {
		p.separators()

		t := p.peek()
		if t.Is(end) {
			return b
		}

		if t == nil || !p.startsStatement(t) {
			p.unexpected(t)
		}

		b.Statements = append(b.Statements, p.statement())

		if t := p.peek(); !t.Is('\n', ';', end) {
			p.unexpected(t)
		}
	}
}

// <statement> ::= 'let' Bare '=' <pipeline> | <pipeline> .
func (p *T) statement() ast.Node {
	t := p.peek()
	if t.IsWord("let") && p.peekAt(1).Is(token.Bare) && p.peekAt(2).Is('=') {
		p.consume()

		n := p.consume()
		p.consume()

		return &ast.Let{
			Position: ast.Position{At: t.Source()},
			Name:     n.Value(),
			Value:    p.pipeline(),
		}
	}

	return p.pipeline()
}

// <pipeline> ::= (<expression> | <command>) ('|' <command>)* .
func (p *T) pipeline() *ast.Pipeline {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	l := &ast.Pipeline{Position: ast.Position{At: t.Source()}}

	if t.Is(token.Bare) && p.known(t.Value()) {
		l.Commands = append(l.Commands, p.command())
	} else {
		l.Head = p.expression(0)
	}

	for p.peek().Is('|') {
		p.consume()
		p.newlines()

		l.Commands = append(l.Commands, p.command())
	}

	return l
}

// <command> ::= Bare+ <expression>* .
func (p *T) command() *ast.Command {
	t := p.expect(token.Bare)

	name := t.Value()
	for n := p.peek(); n.Is(token.Bare) && p.known(name+" "+n.Value()); n = p.peek() {
		name += " " + p.consume().Value()
	}

	if !p.known(name) {
		panic(t.Source().Errorf("unknown command '%s'", name))
	}

	c := &ast.Command{Position: ast.Position{At: t.Source()}, Name: name}

	for n := p.peek(); n != nil && !n.Is('\n', ';', '|', ')', ']', '}', ','); n = p.peek() {
		c.Args = append(c.Args, p.expression(0))
	}

	return c
}

// <expression> ::= <unary> (Operator <expression>)* .
//
// Operators are parsed by precedence climbing. Only operators binding at
// least as tightly as min are consumed.
func (p *T) expression(min int) ast.Node {
	left := p.unary()

	for {
		t := p.peek()

		op, bp, ok := infix(t)
		if !ok || bp < min {
			return left
		}

		p.consume()
		p.newlines()

		next := bp + 1
		if op == "**" {
			next = bp
		}

		left = &ast.Binary{
			Position: ast.Position{At: t.Source()},
			Op:       op,
			Left:     left,
			Right:    p.expression(next),
		}
	}
}

// <unary> ::= ('-' | 'not') <unary> | <postfix> .
func (p *T) unary() ast.Node {
	t := p.peek()

	switch {
	case t.Is(token.Operator) && t.Value() == "-":
		p.consume()

		return &ast.Unary{Position: ast.Position{At: t.Source()}, Op: "-", Operand: p.unary()}
	case t.IsWord("not"):
		p.consume()

		return &ast.Unary{
			Position: ast.Position{At: t.Source()},
			Op:       "not",
			Operand:  p.expression(comparison),
		}
	}

	return p.possibleRange(p.postfix())
}

// <possibleRange> ::= <postfix> (Range <postfix>? (Range <postfix>?)?)? .
func (p *T) possibleRange(from ast.Node) ast.Node {
	t := p.peek()
	if !t.Is(token.Range) {
		return from
	}

	p.consume()

	r := &ast.Range{Position: ast.Position{At: t.Source()}, From: from}

	r.Exclusive = t.Value() == "..<"
	if r.Exclusive {
		r.To = p.bound()

		return r
	}

	if !p.startsBound(p.peek()) {
		return r
	}

	r.To = p.bound()

	t = p.peek()
	if !t.Is(token.Range) {
		return r
	}

	p.consume()

	r.Next = r.To
	r.To = nil
	r.Exclusive = t.Value() == "..<"

	if r.Exclusive || p.startsBound(p.peek()) {
		r.To = p.bound()
	}

	return r
}

func (p *T) bound() ast.Node {
	t := p.peek()
	if t.Is(token.Operator) && t.Value() == "-" {
		p.consume()

		return &ast.Unary{Position: ast.Position{At: t.Source()}, Op: "-", Operand: p.postfix()}
	}

	return p.postfix()
}

func (p *T) startsBound(t *token.T) bool {
	return t.Is(token.Number, token.Variable, '(') ||
		t.Is(token.Operator) && t.Value() == "-"
}

// <postfix> ::= <primary> ('.' (Bare | Number | String))* .
func (p *T) postfix() ast.Node {
	n := p.primary()

	for p.peek().Is('.') {
		d := p.consume()
		t := p.consume()

		switch {
		case t.Is(token.Bare):
			n = &ast.Access{Position: ast.Position{At: d.Source()}, Target: n, Member: t.Value(), Column: true}
		case t.Is(token.DoubleQuoted, token.SingleQuoted):
			n = &ast.Access{Position: ast.Position{At: d.Source()}, Target: n, Member: p.text(t), Column: true}
		case t.Is(token.Number):
			// The lexer reads $x.0.1 as $x . 0.1.
			for _, s := range strings.Split(t.Value(), ".") {
				i, err := integer.Parse(s)
				if err != nil {
					panic(t.Source().Errorf("invalid index '%s'", t.Value()))
				}

				n = &ast.Access{Position: ast.Position{At: d.Source()}, Target: n, Index: integer.To(i).Int()}
			}
		default:
			p.unexpected(t)
		}
	}

	return n
}

// <primary> ::= Number | String | Bare | Variable | <list> | <brace> | '(' <pipeline> ')' .
func (p *T) primary() ast.Node {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	at := ast.Position{At: t.Source()}

	switch t.Class() {
	case token.Bare:
		p.consume()

		return &ast.Literal{Position: at, Value: word(t.Value())}
	case token.DoubleQuoted, token.SingleQuoted:
		p.consume()

		return &ast.Literal{Position: at, Value: str.New(p.text(t))}
	case token.Number:
		p.consume()

		return &ast.Literal{Position: at, Value: number(t)}
	case token.Variable:
		p.consume()

		return &ast.Variable{Position: at, Name: t.Value()}
	case '[':
		return p.list()
	case '{':
		return p.brace()
	case '(':
		p.consume()
		p.newlines()

		b := p.pipeline()

		p.newlines()
		p.expect(')')

		return &ast.Paren{Position: at, Body: b}
	}

	p.unexpected(t)

	return nil
}

// <brace> ::= '{' ('|' Bare* '|')? <block> '}' | '{' (<key> ':' <expression>)* '}' .
func (p *T) brace() ast.Node {
	t := p.consume()
	at := ast.Position{At: t.Source()}

	n := p.peek()

	switch {
	case n.Is('|'):
		p.consume()

		var params []string

		for !p.peek().Is('|') {
			params = append(params, p.expect(token.Bare).Value())

			if p.peek().Is(',') {
				p.consume()
			}
		}

		p.consume()

		c := &ast.Closure{Position: at, Params: params, Body: p.block('}')}
		p.consume()

		return c
	case n.Is('}'):
		p.consume()

		return &ast.Record{Position: at}
	case n.Is(token.Bare, token.DoubleQuoted, token.SingleQuoted, token.Number) && p.peekAt(1).Is(':'):
		return p.record(at)
	}

	c := &ast.Closure{Position: at, Body: p.block('}')}
	p.consume()

	return c
}

// <list> ::= '[' (<expression> ','?)* ']' .
func (p *T) list() ast.Node {
	t := p.consume()
	l := &ast.List{Position: ast.Position{At: t.Source()}}

	for {
		p.newlines()

		if p.peek().Is(']') {
			p.consume()

			return l
		}

		l.Items = append(l.Items, p.expression(0))

		p.newlines()

		if p.peek().Is(',') {
			p.consume()
		}
	}
}

func (p *T) record(at ast.Position) ast.Node {
	r := &ast.Record{Position: at}

	for {
		p.newlines()

		k := p.peek()
		if k.Is('}') {
			p.consume()

			return r
		}

		if !k.Is(token.Bare, token.DoubleQuoted, token.SingleQuoted, token.Number) {
			p.unexpected(k)
		}

		p.consume()
		p.expect(':')
		p.newlines()

		r.Fields = append(r.Fields, ast.Field{Name: p.text(k), Value: p.expression(0)})

		p.newlines()

		if p.peek().Is(',') {
			p.consume()
		}
	}
}

func (p *T) text(t *token.T) string {
	s := t.Value()

	switch {
	case t.Is(token.SingleQuoted):
		return s[1 : len(s)-1]
	case t.Is(token.DoubleQuoted):
		v, err := adapted.ActualBytes(s[1 : len(s)-1])
		if err != nil {
			panic(t.Source().Errorf("%v", err))
		}

		return v
	}

	return s
}

// Helper functions.

// Binding powers.
const (
	disjunction = 1 + iota
	exclusive
	conjunction
	comparison
	additive
	multiplicative
	exponent
)

//nolint:gochecknoglobals
var (
	symbols = map[string]int{
		"==": comparison,
		"!=": comparison,
		"<":  comparison,
		"<=": comparison,
		">":  comparison,
		">=": comparison,
		"=~": comparison,
		"!~": comparison,
		"+":  additive,
		"-":  additive,
		"*":  multiplicative,
		"/":  multiplicative,
		"//": multiplicative,
		"**": exponent,
	}

	words = map[string]int{
		"or":          disjunction,
		"xor":         exclusive,
		"and":         conjunction,
		"in":          comparison,
		"not-in":      comparison,
		"starts-with": comparison,
		"ends-with":   comparison,
		"mod":         multiplicative,
	}
)

func infix(t *token.T) (string, int, bool) {
	var ops map[string]int

	switch {
	case t.Is(token.Bare):
		ops = words
	case t.Is(token.Operator):
		ops = symbols
	default:
		return "", 0, false
	}

	bp, ok := ops[t.Value()]

	return t.Value(), bp, ok
}

func number(t *token.T) cell.I {
	s := strings.ReplaceAll(t.Value(), "_", "")

	if r := s[len(s)-1]; r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
		if d, ok := duration.Parse(s); ok {
			return d
		}

		if f, ok := filesize.Parse(s); ok {
			return f
		}

		panic(t.Source().Errorf("invalid number '%s'", t.Value()))
	}

	if strings.ContainsAny(s, ".eE") {
		f, err := float.Parse(s)
		if err != nil {
			panic(t.Source().Errorf("invalid number '%s'", t.Value()))
		}

		return f
	}

	i, err := integer.Parse(s)
	if err != nil {
		panic(t.Source().Errorf("invalid number '%s'", t.Value()))
	}

	return i
}

func word(s string) cell.I {
	if b, ok := boolean.New(s); ok {
		return b
	}

	switch s {
	case "null":
		return nothing.Null
	case "inf", "Inf":
		return float.New(math.Inf(1))
	case "nan", "NaN":
		return float.New(math.NaN())
	}

	return str.New(s)
}
