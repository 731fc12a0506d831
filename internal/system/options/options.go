// Released under an MIT license. See LICENSE.

// Package options parses fp's command line.
package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by fp -v.
const Version = "fp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	format      string
	input       string
	interactive bool
	usage       = `fp

Usage:
  fp [-d] [-f FORMAT] [-i FILE] COMMAND [ARGUMENT]
  fp [-d] [-f FORMAT] [-i FILE] -c PIPELINE
  fp [-d] [-f FORMAT] [-s]
  fp -h
  fp -v

Arguments:
  COMMAND   An fp command: else, first-where, is, pure or then.
  ARGUMENT  The command's argument, written as fp code.

Options:
  -c, --command=PIPELINE  Run the specified pipeline.
  -d, --debug             Log debugging information to stderr.
  -f, --format=FORMAT     Output format: json, nuon or yaml.
  -i, --input=FILE        Read the pipeline's input from FILE.
  -s, --stdin             Read pipelines from stdin.
  -h, --help              Display this help.
  -v, --version           Print fp version.

A COMMAND or PIPELINE receives its input as $in. The input is read from FILE
or, if stdin is not a TTY, from stdin, and decoded as YAML or JSON.

With no COMMAND or PIPELINE, pipelines are read from stdin. If stdin is a TTY
they are read interactively.
`
)

// Command returns the pipeline to run, or "" if pipelines come from stdin.
func Command() string {
	return command
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Format returns the requested output format, or "" if none was given.
func Format() string {
	return format
}

// Input returns the path to read input from, or "" for stdin.
func Input() string {
	return input
}

// Interactive returns true if pipelines should be read with a line editor.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	set(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func parse(argv []string, tty bool) error {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	set(opts, tty)

	return nil
}

func set(opts docopt.Opts, tty bool) {
	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	format, _ = opts.String("--format")
	input, _ = opts.String("--input")

	name, _ := opts.String("COMMAND")
	if name != "" {
		command = fp(name, opts)
	}

	interactive = command == "" && tty
}

func fp(name string, opts docopt.Opts) string {
	s := "fp " + strings.TrimPrefix(name, "fp ")

	if arg, _ := opts.String("ARGUMENT"); arg != "" {
		s = fmt.Sprintf("%s %s", s, arg)
	}

	return s
}
