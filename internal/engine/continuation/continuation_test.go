package continuation

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

var errNotHere = errors.New("not here")

type body string

func (b body) String() string {
	return string(b)
}

type fakeCall struct {
	closure *closure.T
	value   cell.I
}

func (c *fakeCall) Closure(int) (*closure.T, error) {
	if c.closure == nil {
		return nil, errNotHere
	}

	return c.closure, nil
}

func (c *fakeCall) Value(int) (cell.I, error) {
	if c.value == nil {
		return nil, errNotHere
	}

	return c.value, nil
}

type host struct {
	args    []cell.I
	calls   int
	current cell.I
	err     error
}

func (h *host) EvalClosure(_ *closure.T, args []cell.I, current cell.I) (cell.I, error) {
	h.args = args
	h.calls++
	h.current = current

	if h.err != nil {
		return nil, h.err
	}

	return str.New("called"), nil
}

func TestResolvePrefersClosure(t *testing.T) {
	cb := closure.New(nil, body("x"), nil)

	k, err := Resolve(&fakeCall{closure: cb, value: integer.New(1)}, 0)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	h := &host{}

	v, err := k.Evaluate(h, integer.New(2))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !v.Equal(str.New("called")) || h.calls != 1 {
		t.Fatalf("Expected the closure to be chosen; got %v after %d calls", v, h.calls)
	}
}

func TestResolveFallsBackToValue(t *testing.T) {
	k, err := Resolve(&fakeCall{value: integer.New(1)}, 0)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	h := &host{}

	v, err := k.Evaluate(h, str.New("ignored"))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !v.Equal(integer.New(1)) || h.calls != 0 {
		t.Fatalf("Expected 1 without evaluation; got %v after %d calls", v, h.calls)
	}
}

func TestResolveFails(t *testing.T) {
	_, err := Resolve(&fakeCall{}, 0)
	if !errors.Is(err, errNotHere) {
		t.Fatalf("Expected the value error; got %v", err)
	}
}

func TestEvaluatePassesCurrent(t *testing.T) {
	h := &host{}
	in := integer.New(7)

	v, err := Callback(closure.New([]string{"x"}, body("$x"), nil)).Evaluate(h, in)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !v.Equal(str.New("called")) {
		t.Fatalf("Unexpected result %v", v)
	}

	if h.calls != 1 || len(h.args) != 1 || h.args[0] != in || h.current != in {
		t.Fatalf("Expected one call with the input; got %d calls, %v, %v", h.calls, h.args, h.current)
	}
}

func TestEvaluateReturnsError(t *testing.T) {
	boom := errors.New("boom")
	h := &host{err: boom}

	_, err := Callback(closure.New(nil, body("x"), nil)).Evaluate(h, integer.New(1))
	if err != boom { //nolint:errorlint
		t.Fatalf("Expected the callback error unchanged; got %v", err)
	}
}
