// Released under an MIT license. See LICENSE.

package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), "history"))

	err := h.Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "1 | fp pure\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var got strings.Builder

	err = h.Load(func(r io.Reader) (int, error) {
		n, err := io.Copy(&got, r)

		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.String() != "1 | fp pure\n" {
		t.Errorf("unexpected history %q", got.String())
	}
}

func TestMissing(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), "missing"))

	err := h.Load(func(r io.Reader) (int, error) {
		t.Error("read should not be called")

		return 0, nil
	})
	if err != nil {
		t.Errorf("a missing file should not be an error: %v", err)
	}
}

func TestDisabled(t *testing.T) {
	h := New(Disabled)
	if h.Path() != "" {
		t.Errorf("expected no path, got %q", h.Path())
	}

	err := h.Save(func(w io.Writer) (int, error) {
		t.Error("write should not be called")

		return 0, nil
	})
	if err != nil {
		t.Error(err)
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/user")

	if p := New("").Path(); p != "/home/user/.fp_history" {
		t.Errorf("path = %q, want /home/user/.fp_history", p)
	}
}
