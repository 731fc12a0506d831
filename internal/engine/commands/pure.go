// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/common/type/duration"
	"github.com/michaelmacinnis/fp/internal/common/type/errsys"
	"github.com/michaelmacinnis/fp/internal/common/type/filesize"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/list"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/num"
	"github.com/michaelmacinnis/fp/internal/common/type/other"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/rng"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/type/table"
)

// Default returns true if c is the default value of its type.
func Default(c cell.I) bool {
	switch v := c.(type) {
	case *boolean.T:
		return !v.Bool()
	case *duration.T:
		return v.Nanoseconds() == 0
	case *filesize.T:
		return v.Bytes() == 0
	case *float.T:
		return zeroOrInfinite(v.Float())
	case *integer.T:
		return v.Int() == 0
	case *list.T:
		return v.Length() == 0
	case *nothing.T:
		return true
	case *num.T:
		if i, ok := v.Int(); ok {
			return i == 0
		}

		return zeroOrInfinite(v.Float())
	case *record.T:
		return v.Length() == 0
	case *str.T:
		return v.String() == ""
	case *table.T:
		return v.Length() == 0 || len(v.Columns()) == 0
	case *closure.T, *errsys.T, *other.T, *rng.T:
		return false
	}

	return false
}

// Pure replaces the default value of any type with null.
func Pure(c cell.I) cell.I {
	if Default(c) {
		return nothing.Null
	}

	return c
}

func pure(_ evaluator.I, _ call.I, input cell.I) (cell.I, error) {
	return Pure(input), nil
}

func pureCommand() *Command {
	return &Command{
		Signature: Signature{
			Name:        "fp pure",
			Types:       []IO{{tag.Any, "any | nothing"}},
			Category:    "conversions",
			Description: "Convert a value to null if it is the default value of its type.",
			Extra: `The following values become null:

* int: 0
* float: 0.0, inf, -inf
* string: ''
* bool: false
* duration: 0day, 0hr, 0min, 0sec
* filesize: 0b, 0kb, 0mb, 0gb
* list: []
* record: {}
* table: [{}]
* nothing: null

Ranges, closures, errors and other values are returned unchanged.`,
			Search: []string{"default", "empty", "null", "zero"},
			Examples: []Example{
				{"A zero int becomes null", "0 | fp pure", nothing.Null},
				{"A zero float becomes null", "0. | fp pure", nothing.Null},
				{"An infinite float becomes null", "Inf | fp pure", nothing.Null},
				{"An empty string becomes null", "'' | fp pure", nothing.Null},
				{"False becomes null", "false | fp pure", nothing.Null},
				{"A zero duration becomes null", "0day | fp pure", nothing.Null},
				{"A zero file size becomes null", "0kb | fp pure", nothing.Null},
				{"An empty list becomes null", "[] | fp pure", nothing.Null},
				{"An empty record becomes null", "{} | fp pure", nothing.Null},
				{"A table without columns becomes null", "[{}] | fp pure", nothing.Null},
				{"Null stays null", "null | fp pure", nothing.Null},
				{"Any other value is unchanged", "1 | fp pure", integer.New(1)},
			},
		},
		Run: pure,
	}
}

func zeroOrInfinite(f float64) bool {
	return f == 0 || math.IsInf(f, 0)
}
