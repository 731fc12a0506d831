package validate

import (
	"errors"
	"testing"
)

func TestFixed(t *testing.T) {
	if err := Fixed("fp else", 1, 1, 1); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	err := Fixed("fp else", 0, 1, 1)
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("Expected an argument error; got %v", err)
	}

	if s := err.Error(); s != "fp else: argument 1: expected 1 argument, passed 0" {
		t.Fatalf("Unexpected message %q", s)
	}

	err = Fixed("fp is", 3, 1, 1)

	var ae *ArgumentError
	if !errors.As(err, &ae) || ae.Command != "fp is" {
		t.Fatalf("Expected an ArgumentError for fp is; got %v", err)
	}
}

func TestArgumentUnwraps(t *testing.T) {
	cause := errors.New("not a closure")
	err := Argument("fp first-where", 0, cause)

	if !errors.Is(err, cause) {
		t.Fatal("Expected the cause to be reachable")
	}

	if !errors.Is(err, ErrArgument) {
		t.Fatal("Expected ErrArgument to match")
	}
}

func TestCount(t *testing.T) {
	if s := Count(1, "argument", "s"); s != "1 argument" {
		t.Fatalf("Unexpected %q", s)
	}

	if s := Count(2, "argument", "s"); s != "2 arguments" {
		t.Fatalf("Unexpected %q", s)
	}
}
