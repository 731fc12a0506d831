// Released under an MIT license. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
debug: true
format: yaml
history: /tmp/fp_history
prompt: "fp> "
`), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.Debug {
		t.Error("expected debug to be true")
	}

	if c.Format != "yaml" {
		t.Errorf("format = %q, want yaml", c.Format)
	}

	if c.History != "/tmp/fp_history" {
		t.Errorf("history = %q, want /tmp/fp_history", c.History)
	}

	if c.Prompt != "fp> " {
		t.Errorf("prompt = %q, want 'fp> '", c.Prompt)
	}
}

func TestDefaults(t *testing.T) {
	c, err := Parse([]byte("debug: false\n"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Format != "nuon" || c.Prompt != "> " {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestInvalid(t *testing.T) {
	_, err := Parse([]byte("format: xml\n"), "test.yaml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected an unknown format error, got %v", err)
	}

	_, err = Parse([]byte("debug: [\n"), "test.yaml")
	if err == nil || !strings.HasPrefix(err.Error(), "parsing test.yaml") {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing file should not be an error: %v", err)
	}

	if c.Format != "nuon" {
		t.Errorf("format = %q, want nuon", c.Format)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Format != "json" {
		t.Errorf("format = %q, want json", c.Format)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("FP_CONFIG", "/etc/fp.yaml")

	if p := Path(); p != "/etc/fp.yaml" {
		t.Errorf("path = %q, want /etc/fp.yaml", p)
	}

	t.Setenv("FP_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if p := Path(); p != "/xdg/fp/config.yaml" {
		t.Errorf("path = %q, want /xdg/fp/config.yaml", p)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")

	if p := Path(); p != "/home/user/.config/fp/config.yaml" {
		t.Errorf("path = %q, want /home/user/.config/fp/config.yaml", p)
	}
}
