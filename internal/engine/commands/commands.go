// Released under an MIT license. See LICENSE.

// Package commands provides the fp family of pipeline commands.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

// Shape tells the host how to parse an argument before the command sees it.
type Shape uint8

const (
	// Any arguments are closures or expressions.
	Any Shape = iota

	// String arguments may also be bare words.
	String

	// RowCondition arguments are closures, or expressions turned into
	// closures that bind the current item to $it.
	RowCondition
)

// Argument describes a required positional argument.
type Argument struct {
	Name        string
	Shape       Shape
	Description string
}

// Example is a pipeline that demonstrates a command.
// A nil Result means the example is not checked.
type Example struct {
	Description string
	Example     string
	Result      cell.I
}

// IO pairs an accepted input type with a description of the output type.
type IO struct {
	Input  *tag.T
	Output string
}

// Signature describes a command for the host and for the help text.
type Signature struct {
	Name        string
	Types       []IO
	Required    []Argument
	Category    string
	Description string
	Extra       string
	Search      []string
	Examples    []Example
}

// Accepts returns true if the command takes input tagged t.
func (s *Signature) Accepts(t *tag.T) bool {
	for _, io := range s.Types {
		if t.SubtypeOf(io.Input) {
			return true
		}
	}

	return false
}

// Command is a signature plus the function that runs it.
type Command struct {
	Signature

	Run func(e evaluator.I, c call.I, input cell.I) (cell.I, error)
}

//nolint:gochecknoglobals
var registry map[string]*Command

//nolint:gochecknoinits
func init() {
	registry = map[string]*Command{}

	for _, c := range []*Command{
		elseCommand(),
		firstWhereCommand(),
		fpCommand(),
		isCommand(),
		pureCommand(),
		thenCommand(),
	} {
		registry[c.Name] = c
	}
}

// Lookup returns the command called name.
func Lookup(name string) (*Command, bool) {
	c, ok := registry[name]

	return c, ok
}

// Names returns the names of all fp commands, sorted.
func Names() []string {
	ns := make([]string, 0, len(registry))
	for n := range registry {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}
