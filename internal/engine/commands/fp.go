// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/call"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/evaluator"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

// Help returns the help text for the command called name.
func Help(name string) (string, bool) {
	c, ok := Lookup(name)
	if !ok {
		return "", false
	}

	var b strings.Builder

	b.WriteString(c.Description)
	b.WriteString("\n\n")

	if c.Extra != "" {
		b.WriteString(c.Extra)
		b.WriteString("\n\n")
	}

	if len(c.Search) > 0 {
		fmt.Fprintf(&b, "Search terms: %s\n\n", strings.Join(c.Search, ", "))
	}

	b.WriteString("Usage:\n  > ")
	b.WriteString(c.Name)

	for _, a := range c.Required {
		fmt.Fprintf(&b, " <%s>", a.Name)
	}

	b.WriteString("\n")

	if subs := subcommands(name); len(subs) > 0 {
		b.WriteString("\nSubcommands:\n")

		for _, s := range subs {
			fmt.Fprintf(&b, "  %s - %s\n", s.Name, s.Description)
		}
	}

	if len(c.Required) > 0 {
		b.WriteString("\nParameters:\n")

		for _, a := range c.Required {
			fmt.Fprintf(&b, "  %s: %s\n", a.Name, a.Description)
		}
	}

	if len(c.Types) > 0 {
		b.WriteString("\nInput/output types:\n")

		for _, io := range c.Types {
			fmt.Fprintf(&b, "  %s -> %s\n", io.Input, io.Output)
		}
	}

	if len(c.Examples) > 0 {
		b.WriteString("\nExamples:")

		for _, e := range c.Examples {
			fmt.Fprintf(&b, "\n  %s\n  > %s\n", e.Description, e.Example)
		}
	}

	return strings.TrimRight(b.String(), "\n"), true
}

func fp(_ evaluator.I, _ call.I, _ cell.I) (cell.I, error) {
	h, _ := Help("fp")

	return str.New(h), nil
}

func fpCommand() *Command {
	return &Command{
		Signature: Signature{
			Name:        "fp",
			Types:       []IO{{tag.Any, "string"}},
			Category:    "functional",
			Description: "Functional programming style commands for pipelines.",
			Extra: `The fp commands help to build pipelines that deal with missing values,
types and searches. Run a subcommand's help for details.`,
			Search: []string{"fp", "functional"},
		},
		Run: fp,
	}
}

func subcommands(name string) []*Command {
	var subs []*Command

	for _, n := range Names() {
		if strings.HasPrefix(n, name+" ") {
			subs = append(subs, registry[n])
		}
	}

	return subs
}
