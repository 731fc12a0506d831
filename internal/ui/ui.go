// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for fp pipelines.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/struct/ast"
	"github.com/michaelmacinnis/fp/internal/reader"
	"github.com/michaelmacinnis/fp/internal/system/history"
	"github.com/peterh/liner"
)

// Continued is the prompt shown while a statement spans more lines.
const Continued = "... "

// Evaluator is the interface for things that want to process parsed statements.
type Evaluator interface {
	Evaluate(n ast.Node) (cell.I, error)
	Known(name string) bool
	Names() []string
}

// T (ui) feeds lines to an Evaluator one statement at a time.
type T struct {
	errs   io.Writer
	eval   Evaluator
	print  func(cell.I) error
	reader *reader.T
}

type ui = T

// New creates a ui that passes each value produced by e to print and
// writes errors to errs.
func New(e Evaluator, print func(cell.I) error, errs io.Writer) *T {
	return &T{
		errs:   errs,
		eval:   e,
		print:  print,
		reader: reader.New("fp", e.Known),
	}
}

// Interactive reads lines with a line editor until EOF.
func (u *ui) Interactive(prompt string, h *history.T) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetWordCompleter(Completer(u.eval.Names()))

	if err := h.Load(cli.ReadHistory); err != nil {
		fmt.Fprintf(u.errs, "error reading history: %v\n", err)
	}

	for {
		p := prompt
		if u.reader.Pending() {
			p = Continued
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			u.reader.Reset()

			continue
		case errors.Is(err, io.EOF):
			return h.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		u.Line(line)
	}
}

// Line evaluates the statements completed by line and prints their values.
// The value of a let is not printed. Line returns false if an error was
// reported.
func (u *ui) Line(line string) bool {
	ns, err := u.reader.Scan(line)
	if errors.Is(err, reader.ErrIncomplete) {
		return true
	}

	if err != nil {
		fmt.Fprintln(u.errs, err)

		return false
	}

	for _, n := range ns {
		v, err := u.eval.Evaluate(n)
		if _, ok := n.(*ast.Let); err == nil && !ok {
			err = u.print(v)
		}

		if err != nil {
			fmt.Fprintln(u.errs, err)

			return false
		}
	}

	return true
}

// Script evaluates every line from r. It stops at the first error.
func (u *ui) Script(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if !u.Line(s.Text()) {
			return ErrFailed
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	if u.reader.Pending() {
		fmt.Fprintln(u.errs, "fp: unexpected end of input")

		return ErrFailed
	}

	return nil
}

// ErrFailed is returned by Script after an error has been reported.
var ErrFailed = errors.New("script failed")

// Completer returns a word completer for the command names ns.
//
// The text since the last '|' is completed as a command name, which may
// be more than one word.
func Completer(ns []string) liner.WordCompleter {
	names := append([]string(nil), ns...)
	sort.Strings(names)

	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		start := strings.LastIndexByte(head, '|') + 1
		for start < len(head) && head[start] == ' ' {
			start++
		}

		prefix := head[start:]

		var cs []string

		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n)
			}
		}

		if len(cs) == 0 {
			return head, nil, tail
		}

		return head[:start], cs, tail
	}
}
