package rng

import (
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/type/integer"
)

func collect(t *testing.T, r *T, limit int) []int64 {
	t.Helper()

	var out []int64
	for c := range r.All() {
		out = append(out, integer.To(c).Int())
		if len(out) == limit {
			break
		}
	}

	return out
}

func TestBounds(t *testing.T) {
	for _, c := range []struct {
		r        *T
		literal  string
		expected []int64
	}{
		{To(New(1, 0, 4, true)), "1..4", []int64{1, 2, 3, 4}},
		{To(New(1, 0, 4, false)), "1..<4", []int64{1, 2, 3}},
		{To(New(4, 0, 1, true)), "4..1", []int64{4, 3, 2, 1}},
		{To(New(1, 3, 10, true)), "1..4..10", []int64{1, 4, 7, 10}},
		{To(New(1, 0, 1, false)), "1..<1", nil},
	} {
		if s := c.r.Literal(); s != c.literal {
			t.Fatalf("Expected %s; got %s", c.literal, s)
		}

		actual := collect(t, c.r, 100)
		if len(actual) != len(c.expected) {
			t.Fatalf("%s: expected %v; got %v", c.literal, c.expected, actual)
		}

		for i := range actual {
			if actual[i] != c.expected[i] {
				t.Fatalf("%s: expected %v; got %v", c.literal, c.expected, actual)
			}
		}
	}
}

func TestUnboundedIsLazy(t *testing.T) {
	r := To(Unbounded(1, 0))

	if s := r.Literal(); s != "1.." {
		t.Fatalf("Expected 1..; got %s", s)
	}

	actual := collect(t, r, 6)
	if len(actual) != 6 || actual[5] != 6 {
		t.Fatalf("Unexpected items %v", actual)
	}
}
