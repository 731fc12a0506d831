package record

import (
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

func TestRepeatedNames(t *testing.T) {
	r := New(
		Field{Name: "a", Value: integer.New(1)},
		Field{Name: "b", Value: integer.New(2)},
		Field{Name: "a", Value: integer.New(3)},
	)

	if r.Length() != 2 {
		t.Fatalf("Expected 2 fields; got %d", r.Length())
	}

	if v, _ := r.Get("a"); !v.Equal(integer.New(3)) {
		t.Fatalf("Expected a to be 3; got %s", v.Name())
	}

	if s := r.Literal(); s != "{a: 3, b: 2}" {
		t.Fatalf("Unexpected literal %s", s)
	}
}

func TestName(t *testing.T) {
	if n := New().Name(); n != "record" {
		t.Fatalf("Expected record; got %s", n)
	}

	r := New(
		Field{Name: "name", Value: str.New("Alice")},
		Field{Name: "rank", Value: integer.New(10)},
	)

	if n := r.Name(); n != "record<name: string, rank: int>" {
		t.Fatalf("Unexpected name %s", n)
	}
}

func TestEqualIsOrdered(t *testing.T) {
	a := New(Field{"x", integer.New(1)}, Field{"y", integer.New(2)})
	b := New(Field{"y", integer.New(2)}, Field{"x", integer.New(1)})

	if a.Equal(b) {
		t.Fatal("Expected field order to matter")
	}

	if !a.Equal(New(Field{"x", integer.New(1)}, Field{"y", integer.New(2)})) {
		t.Fatal("Expected identical records to be equal")
	}
}

func TestKey(t *testing.T) {
	for k, v := range map[string]string{
		"name":       "name",
		"first-name": "first-name",
		"two words":  `"two words"`,
		"":           `""`,
	} {
		if s := Key(k); s != v {
			t.Fatalf("Expected %s; got %s", v, s)
		}
	}
}
