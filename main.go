// Released under an MIT license. See LICENSE.

/*
Fp runs pipelines built from functional programming style commands.

The fp commands deal with missing values, types and searches:

	null | fp else 100
	1 | fp then {|x| $x + 2 }
	[1, 2, 4, 8] | fp first-where $it > 5
	{name: "Alice"} | fp is record
	0 | fp pure

Fp reads a YAML or JSON document as its input and prints the result:

	fp -i people.yaml first-where '$it.rank > 5'

Fp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/fp/internal/codec"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/engine"
	"github.com/michaelmacinnis/fp/internal/system/config"
	"github.com/michaelmacinnis/fp/internal/system/history"
	"github.com/michaelmacinnis/fp/internal/system/options"
	"github.com/michaelmacinnis/fp/internal/ui"
)

func main() {
	options.Parse()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fatal(err)
	}

	level := slog.LevelWarn
	if options.Debug() || cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)

	format := options.Format()
	if format == "" {
		format = cfg.Format
	}

	if !slices.Contains(codec.Outputs, format) {
		fatal(fmt.Errorf("unknown format %q", format))
	}

	e := engine.New(l)
	if err := e.Boot(); err != nil {
		fatal(err)
	}

	out := printer(os.Stdout, format)

	if cmd := options.Command(); cmd != "" {
		in, err := load(options.Input(), os.Stdin)
		if err != nil {
			fatal(err)
		}

		e.Define("in", in)

		v, err := e.Run("fp", cmd)
		if err == nil {
			err = out(v)
		}

		if err != nil {
			fatal(err)
		}

		return
	}

	u := ui.New(e, out, os.Stderr)

	if options.Interactive() {
		err = u.Interactive(cfg.Prompt, history.New(cfg.History))
	} else {
		err = u.Script(os.Stdin)
	}

	if err != nil {
		if err != ui.ErrFailed { //nolint:errorlint
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fp:", err)
	os.Exit(1)
}

// load decodes the input named path. With no path, stdin is read unless it
// is a terminal. No input is null.
func load(path string, stdin *os.File) (cell.I, error) {
	var (
		data   []byte
		err    error
		format = "yaml"
	)

	switch {
	case path != "":
		data, err = os.ReadFile(path)
		if filepath.Ext(path) == ".json" {
			format = "json"
		}
	case stdin == nil || isatty.IsTerminal(stdin.Fd()):
		return nothing.Null, nil
	default:
		data, err = io.ReadAll(stdin)
	}

	if err != nil {
		return nil, err
	}

	return codec.Decode(format, string(data))
}

// printer writes values to w in format. In nuon format strings are
// written as text.
func printer(w io.Writer, format string) func(cell.I) error {
	return func(c cell.I) error {
		if format == "nuon" && str.Is(c) {
			_, err := fmt.Fprintln(w, str.To(c).String())

			return err
		}

		s, err := codec.Encode(format, c)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, s)

		return err
	}
}
