// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Disabled is the configured path that turns history off.
const Disabled = "-"

// T (history) is a history file location. The zero value is disabled.
type T struct {
	path string
}

type history = T

// New locates the history file. An empty path means ~/.fp_history.
func New(path string) *T {
	switch path {
	case Disabled:
		return &T{}
	case "":
		path = filepath.Join(os.Getenv("HOME"), ".fp_history")
	}

	return &T{path: path}
}

// Path returns the location of the history file, or "" if disabled.
func (h *history) Path() string {
	return h.path
}

// Load passes the history file to read. A missing file is not an error.
func (h *history) Load(read func(r io.Reader) (int, error)) error {
	if h.path == "" {
		return nil
	}

	f, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the history file with what write produces.
func (h *history) Save(write func(w io.Writer) (int, error)) error {
	if h.path == "" {
		return nil
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
