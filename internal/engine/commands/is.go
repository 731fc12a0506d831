// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"

	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/validate"
)

var errNotString = errors.New("expected a string")

// Matches returns true if c has the type named by requested.
//
// The names list, record and table also match any list, record or table,
// whatever its element or field types.
func Matches(c cell.I, requested string) bool {
	t := c.Type()

	switch {
	case t.String() == requested:
		return true
	case requested == "list":
		return t.SubtypeOf(tag.GenericList)
	case requested == "record":
		return t.SubtypeOf(tag.GenericRecord)
	case requested == "table":
		return t.SubtypeOf(tag.GenericTable)
	}

	return false
}

func is(_ evaluator.I, c call.I, input cell.I) (cell.I, error) {
	v, err := c.Value(0)
	if err != nil {
		return nil, validate.Argument("fp is", 0, err)
	}

	if !str.Is(v) {
		return nil, validate.Argument("fp is", 0, errNotString)
	}

	return boolean.Bool(Matches(input, str.To(v).String())), nil
}

func isCommand() *Command {
	return &Command{
		Signature: Signature{
			Name:        "fp is",
			Types:       []IO{{tag.Any, "bool"}},
			Required:    []Argument{{"type", String, "The expected type"}},
			Category:    "formats",
			Description: "Check if the input is of a specified type.",
			Extra: "Returns true if the type of the input is the one named. " +
				"The names list, record and table match any list, record or table.",
			Search: []string{"type", "type-check"},
			Examples: []Example{
				{"Check if input is an int", "1 | fp is int", boolean.True},
				{"Check if input is a string", "1 | fp is string", boolean.False},
				{"Check if input is a list", "[1, 2] | fp is list", boolean.True},
				{"Check if input is a list of ints", "[1, 2] | fp is list<int>", boolean.True},
				{"A table is also a list", "[{a: 1}] | fp is list", boolean.True},
				{
					"Check a record's field types",
					`{name: "Alice", rank: 10} | fp is 'record<name: string, rank: int>'`,
					boolean.True,
				},
			},
		},
		Run: is,
	}
}
