// Released under an MIT license. See LICENSE.

package options

import (
	"testing"
)

func TestCommand(t *testing.T) {
	if err := parse([]string{"-f", "json", "first-where", "$it > 5"}, true); err != nil {
		t.Fatal(err)
	}

	if Command() != "fp first-where $it > 5" {
		t.Errorf("unexpected command %q", Command())
	}

	if Format() != "json" {
		t.Errorf("unexpected format %q", Format())
	}

	if Interactive() {
		t.Error("a command is never interactive")
	}
}

func TestCommandWithoutArgument(t *testing.T) {
	if err := parse([]string{"-i", "people.yaml", "pure"}, false); err != nil {
		t.Fatal(err)
	}

	if Command() != "fp pure" {
		t.Errorf("unexpected command %q", Command())
	}

	if Input() != "people.yaml" {
		t.Errorf("unexpected input %q", Input())
	}
}

func TestPipeline(t *testing.T) {
	if err := parse([]string{"-d", "-c", "1 | fp then 2"}, true); err != nil {
		t.Fatal(err)
	}

	if Command() != "1 | fp then 2" {
		t.Errorf("unexpected command %q", Command())
	}

	if !Debug() {
		t.Error("expected debug")
	}
}

func TestStdin(t *testing.T) {
	if err := parse([]string{"-s"}, true); err != nil {
		t.Fatal(err)
	}

	if Command() != "" || !Interactive() {
		t.Errorf("expected interactive input, got %q %v", Command(), Interactive())
	}

	if err := parse([]string{}, false); err != nil {
		t.Fatal(err)
	}

	if Interactive() {
		t.Error("stdin that is not a TTY is not interactive")
	}
}

func TestInvalid(t *testing.T) {
	if err := parse([]string{"-c"}, true); err == nil {
		t.Error("expected an error")
	}
}
