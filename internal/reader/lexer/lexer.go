// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for fp pipelines.
//
// The fp lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/fp/internal/common/struct/loc"
	"github.com/michaelmacinnis/fp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Action to resume after a comment.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) fail(msg string) action {
	l.emit(token.Error, msg)

	return nil
}

func (l *T) gather() {
	if l.tokens == nil {
		l.tokens = make(chan *token.T, 16)
	}

	if len(l.queue) == 0 {
		return
	}

	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil

	if l.state == nil {
		l.state = skipWhitespace
	}
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	return l.peekAt(l.index)
}

func (l *T) peekAt(i int) (token.Class, int) {
	r, w := rune(eof), 0
	if i < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[i:])
	}

	return token.Class(r), w
}

// second returns the character after the next one.
func (l *T) second() token.Class {
	_, w := l.peek()
	r, _ := l.peekAt(l.index + w)

	return r
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterBang(l *T) action {
	r, w := l.peek()

	switch r {
	case '=', '~':
		l.accept(r, w)
		l.emit(token.Operator, l.Text())

		return skipWhitespace
	}

	return l.fail("unexpected '!'")
}

func afterDot(l *T) action {
	r, w := l.peek()
	if r != '.' {
		l.emit('.', l.Text())

		return skipHorizontalSpace
	}

	l.accept(r, w)

	if r, w = l.peek(); r == '<' {
		l.accept(r, w)
	}

	l.emit(token.Range, l.Text())

	return skipHorizontalSpace
}

func afterEquals(l *T) action {
	r, w := l.peek()

	switch r {
	case '=', '~':
		l.accept(r, w)
		l.emit(token.Operator, l.Text())
	default:
		l.emit('=', l.Text())
	}

	return skipWhitespace
}

func afterRelational(l *T) action {
	if r, w := l.peek(); r == '=' {
		l.accept(r, w)
	}

	l.emit(token.Operator, l.Text())

	return skipWhitespace
}

func afterRepeatable(l *T) action {
	s := l.Text()
	if r, w := l.peek(); r == token.Class(s[0]) {
		l.accept(r, w)
	}

	l.emit(token.Operator, l.Text())

	return skipWhitespace
}

func scanBare(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == '<' && parameterized(l.Text()):
			return scanAngled
		case r == '-' || r == '_' || isAlnum(r):
			l.accept(r, w)
		default:
			l.emit(token.Bare, l.Text())

			return skipHorizontalSpace
		}
	}
}

// scanAngled continues a bare word with a type parameter list, as in
// list<int> or record<name: string>.
func scanAngled(l *T) action {
	depth := 0

	for {
		r := l.next()

		switch r {
		case eof, '\n':
			return l.fail("unterminated type parameters")
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				l.emit(token.Bare, l.Text())

				return skipHorizontalSpace
			}
		}
	}
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			resumed := l.saved
			l.saved = nil

			return resumed
		}

		l.accept(r, w)
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return l.fail("unterminated string")
		case '"':
			l.emit(token.DoubleQuoted, l.Text())

			return skipHorizontalSpace
		case '\\':
			if l.next() == eof {
				return l.fail("unterminated string")
			}
		}
	}
}

func scanNumber(l *T) action {
	digits(l)

	if r, w := l.peek(); r == '.' && l.second() != '.' {
		l.accept(r, w)
		digits(l)
	}

	if r, w := l.peek(); r == 'e' || r == 'E' {
		s := l.second()
		if isDigit(s) || s == '+' || s == '-' {
			l.accept(r, w)
			l.accept(l.peek())
			digits(l)
		}
	}

	// Unit suffix.
	for {
		r, w := l.peek()
		if !isLetter(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Number, l.Text())

	return skipHorizontalSpace
}

func scanSingleQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return l.fail("unterminated string")
		case '\'':
			l.emit(token.SingleQuoted, l.Text())

			return skipHorizontalSpace
		}
	}
}

func scanVariable(l *T) action {
	for {
		r, w := l.peek()
		if r != '_' && r != '-' && !isAlnum(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()
	if len(s) == 1 {
		return l.fail("expected a variable name after '$'")
	}

	l.emit(token.Variable, s[1:])

	return skipHorizontalSpace
}

func skipHorizontalSpace(l *T) action {
	return startState(l, skipHorizontalSpace, "\t ")
}

func skipWhitespace(l *T) action {
	return startState(l, skipWhitespace, "\n\t ")
}

func startState(l *T, state action, ignore string) action {
	for {
		r := l.next()

		if strings.ContainsRune(ignore, rune(r)) {
			l.skip()

			continue
		}

		switch r {
		case eof:
			return nil
		case '\n', ';', '|', '(', '[', '{', ',', ':':
			l.emit(r, l.Text())

			return skipWhitespace
		case ')', ']', '}':
			l.emit(r, l.Text())

			return skipHorizontalSpace
		case '!':
			return afterBang
		case '"':
			return scanDoubleQuoted
		case '#':
			l.saved = state

			return scanComment
		case '$':
			return scanVariable
		case '\'':
			return scanSingleQuoted
		case '*', '/':
			return afterRepeatable
		case '+', '-':
			l.emit(token.Operator, l.Text())

			return skipWhitespace
		case '.':
			return afterDot
		case '<', '>':
			return afterRelational
		case '=':
			return afterEquals
		}

		switch {
		case isDigit(r):
			return scanNumber
		case isLetter(r) || r == '_':
			return scanBare
		}

		return l.fail("unexpected " + r.String())
	}
}

// Helper functions.

func digits(l *T) {
	for {
		r, w := l.peek()
		if !isDigit(r) && r != '_' {
			return
		}

		l.accept(r, w)
	}
}

// parameterized returns true if s is a type name that takes parameters.
func parameterized(s string) bool {
	switch s {
	case "list", "record", "table":
		return true
	}

	return false
}

func isAlnum(r token.Class) bool {
	return isDigit(r) || isLetter(r)
}

func isDigit(r token.Class) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r token.Class) bool {
	return r != eof && unicode.IsLetter(rune(r))
}
