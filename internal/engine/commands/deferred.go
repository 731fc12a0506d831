// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/validate"
	"github.com/michaelmacinnis/fp/internal/engine/continuation"
)

// Else returns input unless it is null, in which case it returns the value
// of argument 0. The argument is not touched when input is not null.
func Else(e evaluator.I, c call.I, input cell.I) (cell.I, error) {
	if !nothing.Is(input) {
		return input, nil
	}

	return resolve("fp else", e, c, input)
}

// Then returns null if input is null and otherwise the value of argument 0.
// The argument is not touched when input is null.
func Then(e evaluator.I, c call.I, input cell.I) (cell.I, error) {
	if nothing.Is(input) {
		return input, nil
	}

	return resolve("fp then", e, c, input)
}

func elseCommand() *Command {
	return &Command{
		Signature: Signature{
			Name:  "fp else",
			Types: []IO{{tag.Any, "any"}},
			Required: []Argument{{
				"value", Any,
				"The value, or a closure producing the value, to use when input is null",
			}},
			Category:    "conversions",
			Description: "Use another value when input is null.",
			Extra: "Continue the pipeline with another value if input is null.\n\n" +
				"The value can be given directly or as a closure that produces it. " +
				"The closure only runs when input is null.",
			Search: []string{"conversion", "default", "fallback", "transform"},
			Examples: []Example{
				{"Use foo when input is null", "null | fp else foo", str.New("foo")},
				{"Input that is not null is kept", "1 | fp else foo", integer.New(1)},
				{
					"Use 100 when no element of a list is larger than 5",
					"[1, 2, 4] | fp first-where $it > 5 | fp else 100",
					integer.New(100),
				},
				{
					"Keep the first element larger than 5 when there is one",
					"[1, 2, 4, 8] | fp first-where $it > 5 | fp else 100",
					integer.New(8),
				},
				{"Produce the value with a closure", "null | fp else { 40 + 2 }", integer.New(42)},
			},
		},
		Run: Else,
	}
}

func resolve(cmd string, e evaluator.I, c call.I, input cell.I) (cell.I, error) {
	k, err := continuation.Resolve(c, 0)
	if err != nil {
		return nil, validate.Argument(cmd, 0, err)
	}

	return k.Evaluate(e, input)
}

func thenCommand() *Command {
	return &Command{
		Signature: Signature{
			Name:  "fp then",
			Types: []IO{{tag.Any, "any"}},
			Required: []Argument{{
				"value", Any,
				"The value, or a closure producing the value, to use when input is not null",
			}},
			Category:    "conversions",
			Description: "Do something with the input when input is not null.",
			Extra: "Evaluate the argument, for example a closure applied to the input, " +
				"when input is not null. Null input is returned as null.",
			Search: []string{"conversion", "map", "transform"},
			Examples: []Example{
				{"Use 100 when input is not null", "1 | fp then 100", integer.New(100)},
				{"Add 2 to input that is not null", "1 | fp then { $in + 2 }", integer.New(3)},
				{"Add 2 using a parameter", "1 | fp then {|x| $x + 2 }", integer.New(3)},
				{"Null input is not passed to the closure", "null | fp then { $in + 2 }", nothing.Null},
				{"Closures see variables in scope", "let foo = 2; 1 | fp then { $foo + 2 }", integer.New(4)},
			},
		},
		Run: Then,
	}
}
