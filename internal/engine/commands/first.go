// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/validate"
)

// FirstWhere returns the first item of input for which the condition in
// argument 0 is true, or null if there is no such item.
//
// Items are produced one at a time and the search stops at the first match,
// so input may be unbounded. An error from the condition ends the search.
func FirstWhere(e evaluator.I, c call.I, input cell.I) (cell.I, error) {
	const cmd = "fp first-where"

	cond, err := c.Closure(0)
	if err != nil {
		return nil, validate.Argument(cmd, 0, err)
	}

	items, ok := sequence.Of(input)
	if !ok {
		return nil, validate.Input(cmd, input.Name())
	}

	n := 0
	for item := range items {
		n++

		r, err := e.EvalClosure(cond, []cell.I{item}, item)
		if err != nil {
			return nil, err
		}

		if boolean.IsTrue(r) {
			slog.Debug("match", "command", cmd, "visited", n)

			return item, nil
		}
	}

	slog.Debug("no match", "command", cmd, "visited", n)

	return nothing.Null, nil
}

func firstWhereCommand() *Command {
	alice := record.New(
		record.Field{Name: "name", Value: str.New("Alice")},
		record.Field{Name: "rank", Value: integer.New(10)},
	)

	return &Command{
		Signature: Signature{
			Name: "fp first-where",
			Types: []IO{
				{tag.GenericList, "any | nothing"},
				{tag.GenericTable, "record | nothing"},
				{tag.Range, "any | nothing"},
			},
			Required: []Argument{{
				"condition", RowCondition,
				"Row condition or closure that the element must satisfy",
			}},
			Category:    "filters",
			Description: "Find the first element which meets a condition.",
			Extra: `Find the first element which meets a condition. Returns null if no element does.

Supported input types:

* list
* table
* range`,
			Search: []string{"condition", "filter", "find", "search"},
			Examples: []Example{
				{
					"Find the first element of a list larger than 5",
					"[1, 2, 4, 8] | fp first-where $it > 5",
					integer.New(8),
				},
				{
					"Find the first element of a list larger than 5 using a closure",
					"[1, 2, 4, 8] | fp first-where {|x| $x > 5}",
					integer.New(8),
				},
				{
					"No element of a list is larger than 5",
					"[1, 2, 4] | fp first-where $it > 5",
					nothing.Null,
				},
				{
					"Find the first row of a table with a name starting with A",
					`[{name: "Alice", rank: 10}, {name: "Bob", rank: 7}] | fp first-where $it.name =~ "A.*"`,
					alice,
				},
				{
					"Find the first row of a table with a name starting with A using a closure",
					`[{name: "Alice", rank: 10}, {name: "Bob", rank: 7}] | fp first-where {|x| $x.name | str starts-with A}`,
					alice,
				},
				{
					"No row of a table has a name starting with A",
					`[{name: "Bob", rank: 7}] | fp first-where {|x| $x.name | str starts-with A}`,
					nothing.Null,
				},
				{
					"Find the first element of a range larger than 5",
					"1..10 | fp first-where $it > 5",
					integer.New(6),
				},
				{
					"Search an unbounded range",
					"1.. | fp first-where $it > 5",
					integer.New(6),
				},
			},
		},
		Run: FirstWhere,
	}
}
