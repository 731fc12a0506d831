package commands

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/validate"
)

func add2(x cell.I) (cell.I, error) {
	return integer.New(integer.To(x).Int() + 2), nil
}

func TestElse(t *testing.T) {
	h := &host{}

	v, err := Else(h, with(integer.New(42)), nothing.Null)
	if err != nil || !v.Equal(integer.New(42)) {
		t.Fatalf("Expected 42; got %v, %v", v, err)
	}

	a := with(callback(add2))
	five := integer.New(5)

	v, err = Else(h, a, five)
	if err != nil || v != five {
		t.Fatalf("Expected 5; got %v, %v", v, err)
	}

	if h.calls != 0 || a.closures != 0 || a.values != 0 {
		t.Fatalf("Expected the argument to be untouched; got %d calls", h.calls)
	}
}

func TestElseCallback(t *testing.T) {
	h := &host{}

	v, err := Else(h, with(callback(func(x cell.I) (cell.I, error) {
		if x != nothing.Null {
			t.Fatalf("Expected null as the input; got %v", x)
		}

		return integer.New(42), nil
	})), nothing.Null)
	if err != nil || !v.Equal(integer.New(42)) {
		t.Fatalf("Expected 42; got %v, %v", v, err)
	}

	if h.calls != 1 {
		t.Fatalf("Expected one evaluation; got %d", h.calls)
	}
}

func TestThen(t *testing.T) {
	h := &host{}
	a := with(callback(add2))

	v, err := Then(h, a, nothing.Null)
	if err != nil || v != nothing.Null {
		t.Fatalf("Expected null; got %v, %v", v, err)
	}

	if h.calls != 0 || a.closures != 0 {
		t.Fatalf("Expected the callback not to run; got %d calls", h.calls)
	}

	v, err = Then(h, a, integer.New(5))
	if err != nil || !v.Equal(integer.New(7)) {
		t.Fatalf("Expected 7; got %v, %v", v, err)
	}

	if h.calls != 1 {
		t.Fatalf("Expected one evaluation; got %d", h.calls)
	}

	v, err = Then(h, with(integer.New(100)), integer.New(1))
	if err != nil || !v.Equal(integer.New(100)) {
		t.Fatalf("Expected 100; got %v, %v", v, err)
	}
}

func TestDeferredErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Then(&host{}, with(callback(func(cell.I) (cell.I, error) {
		return nil, boom
	})), integer.New(1))
	if err != boom { //nolint:errorlint
		t.Fatalf("Expected the callback error unchanged; got %v", err)
	}

	_, err = Else(&host{}, with(), nothing.Null)
	if !errors.Is(err, validate.ErrArgument) {
		t.Fatalf("Expected an argument error; got %v", err)
	}

	var ae *validate.ArgumentError
	if !errors.As(err, &ae) || ae.Command != "fp else" || ae.Index != 0 {
		t.Fatalf("Expected the error to name fp else; got %v", err)
	}
}
