// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/fp/internal/codec"
	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/validate"
	"github.com/michaelmacinnis/fp/internal/engine/commands"
)

// The host's own commands. They are small and exist so pipelines have
// something besides fp commands to call.
//
//nolint:gochecknoglobals
var builtins = map[string]*commands.Command{}

//nolint:gochecknoinits
func init() {
	for _, c := range []*commands.Command{
		describe(),
		glob(),
		length(),
		text("str contains", "Check if a string contains a substring.", strings.Contains),
		text("str ends-with", "Check if a string ends with a suffix.", strings.HasSuffix),
		text("str starts-with", "Check if a string starts with a prefix.", strings.HasPrefix),
	} {
		builtins[c.Name] = c
	}

	for _, f := range codec.Inputs {
		c := from(f)
		builtins[c.Name] = c
	}

	for _, f := range codec.Outputs {
		c := to(f)
		builtins[c.Name] = c
	}
}

func describe() *commands.Command {
	return &commands.Command{
		Signature: commands.Signature{
			Name:        "describe",
			Types:       []commands.IO{{Input: tag.Any, Output: "string"}},
			Category:    "core",
			Description: "Describe the type of the input.",
		},
		Run: func(_ evaluator.I, _ call.I, input cell.I) (cell.I, error) {
			return str.New(input.Type().String()), nil
		},
	}
}

func from(format string) *commands.Command {
	return &commands.Command{
		Signature: commands.Signature{
			Name:        "from " + format,
			Types:       []commands.IO{{Input: tag.String, Output: "any"}},
			Category:    "formats",
			Description: "Parse text as " + strings.ToUpper(format) + ".",
		},
		Run: func(_ evaluator.I, _ call.I, input cell.I) (cell.I, error) {
			return codec.Decode(format, str.To(input).String())
		},
	}
}

func glob() *commands.Command {
	const name = "str glob"

	return &commands.Command{
		Signature: commands.Signature{
			Name:  name,
			Types: []commands.IO{{Input: tag.String, Output: "bool"}},
			Required: []commands.Argument{{
				Name:        "pattern",
				Shape:       commands.String,
				Description: "The shell pattern to match",
			}},
			Category:    "strings",
			Description: "Check if a string matches a shell pattern.",
		},
		Run: func(_ evaluator.I, c call.I, input cell.I) (cell.I, error) {
			v, err := argument(name, c)
			if err != nil {
				return nil, err
			}

			ok, err := adapted.Match(v, str.To(input).String())
			if err != nil {
				return nil, validate.Argument(name, 0, err)
			}

			return boolean.Bool(ok), nil
		},
	}
}

func length() *commands.Command {
	type lengthy interface {
		Length() int64
	}

	return &commands.Command{
		Signature: commands.Signature{
			Name: "length",
			Types: []commands.IO{
				{Input: tag.GenericList, Output: "int"},
				{Input: tag.GenericRecord, Output: "int"},
				{Input: tag.GenericTable, Output: "int"},
			},
			Category:    "filters",
			Description: "Count the elements of the input.",
		},
		Run: func(_ evaluator.I, _ call.I, input cell.I) (cell.I, error) {
			l, ok := input.(lengthy)
			if !ok {
				return nil, validate.Input("length", input.Name())
			}

			return integer.New(l.Length()), nil
		},
	}
}

func text(name, description string, f func(s, t string) bool) *commands.Command {
	return &commands.Command{
		Signature: commands.Signature{
			Name:  name,
			Types: []commands.IO{{Input: tag.String, Output: "bool"}},
			Required: []commands.Argument{{
				Name:        "string",
				Shape:       commands.String,
				Description: "The string to look for",
			}},
			Category:    "strings",
			Description: description,
		},
		Run: func(_ evaluator.I, c call.I, input cell.I) (cell.I, error) {
			v, err := argument(name, c)
			if err != nil {
				return nil, err
			}

			return boolean.Bool(f(str.To(input).String(), v)), nil
		},
	}
}

// argument returns the string value of argument 0.
func argument(cmd string, c call.I) (string, error) {
	v, err := c.Value(0)
	if err != nil {
		return "", validate.Argument(cmd, 0, err)
	}

	if !str.Is(v) {
		return "", validate.Argument(cmd, 0, fmt.Errorf("%w: expected string, got %s", errType, v.Name()))
	}

	return str.To(v).String(), nil
}

func to(format string) *commands.Command {
	return &commands.Command{
		Signature: commands.Signature{
			Name:        "to " + format,
			Types:       []commands.IO{{Input: tag.Any, Output: "string"}},
			Category:    "formats",
			Description: "Convert the input to " + strings.ToUpper(format) + " text.",
		},
		Run: func(_ evaluator.I, _ call.I, input cell.I) (cell.I, error) {
			s, err := codec.Encode(format, input)
			if err != nil {
				return nil, err
			}

			return str.New(s), nil
		},
	}
}
