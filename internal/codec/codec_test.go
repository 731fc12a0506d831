package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/list"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/type/table"
)

func TestDecodeYAML(t *testing.T) {
	c, err := Decode("yaml", `
- name: Alice
  rank: 10
- name: Bob
  rank: 7
`)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !table.Is(c) {
		t.Fatalf("Expected a table; got %s", c.Name())
	}

	if s := c.Type().String(); s != "table<name: string, rank: int>" {
		t.Fatalf("Unexpected type %s", s)
	}

	expected := `[{name: "Alice", rank: 10}, {name: "Bob", rank: 7}]`
	if s := literal.String(c); s != expected {
		t.Fatalf("Expected %s; got %s", expected, s)
	}
}

func TestDecodeKeepsOrder(t *testing.T) {
	c, err := Decode("json", `{"z": 1, "a": [true, null, 1.5], "m": {}}`)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	r, ok := c.(*record.T)
	if !ok {
		t.Fatalf("Expected a record; got %s", c.Name())
	}

	names := r.Names()
	if len(names) != 3 || names[0] != "z" || names[1] != "a" || names[2] != "m" {
		t.Fatalf("Unexpected field order %v", names)
	}

	a, _ := r.Get("a")
	if s := literal.String(a); s != "[true, null, 1.5]" {
		t.Fatalf("Unexpected list %s", s)
	}
}

func TestDecodeScalars(t *testing.T) {
	for _, tt := range []struct {
		text     string
		expected string
	}{
		{"", "null"},
		{"~", "null"},
		{"42", "42"},
		{".inf", "inf"},
		{"-.inf", "-inf"},
		{".nan", "NaN"},
		{"'42'", `"42"`},
		{"yes", `"yes"`},
		{"!!binary aGk=", "aGk="},
		{"[]", "[]"},
		{"{}", "{}"},
		{"[{}]", "[{}]"},
	} {
		c, err := Decode("yaml", tt.text)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.text, err)
		}

		if s := literal.String(c); s != tt.expected {
			t.Errorf("%q: expected %s, got %s", tt.text, tt.expected, s)
		}
	}
}

func TestDecodeBigInt(t *testing.T) {
	c, err := Decode("yaml", "!!int 123456789012345678901234567890")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if c.Name() != "number" {
		t.Fatalf("Expected a number; got %s", c.Name())
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode("yaml", "a: [1"); !errors.Is(err, ErrDecode) {
		t.Fatalf("Expected a decode error; got %v", err)
	}

	if _, err := Decode("toml", "a = 1"); !errors.Is(err, ErrDecode) {
		t.Fatalf("Expected an unknown format error; got %v", err)
	}
}

func TestEncode(t *testing.T) {
	r := record.New(
		record.Field{Name: "name", Value: str.New("Alice")},
		record.Field{Name: "tags", Value: list.New(integer.New(1), nothing.Null)},
	)

	for _, tt := range []struct {
		format   string
		expected string
	}{
		{"json", "{\n  \"name\": \"Alice\",\n  \"tags\": [\n    1,\n    null\n  ]\n}"},
		{"nuon", `{name: "Alice", tags: [1, null]}`},
		{"yaml", "name: Alice\ntags:\n  - 1\n  - null"},
	} {
		s, err := Encode(tt.format, r)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.format, err)
		}

		if s != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.format, tt.expected, s)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode("json", float.New(math.Inf(1))); !errors.Is(err, ErrEncode) {
		t.Fatalf("Expected an encode error; got %v", err)
	}

	if _, err := Encode("csv", nothing.Null); !errors.Is(err, ErrEncode) {
		t.Fatalf("Expected an unknown format error; got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	in := `[{"a": 1, "b": "x"}, {"a": 2, "b": "y"}]`

	c, err := Decode("json", in)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	s, err := Encode("json", c)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	d, err := Decode("json", s)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !c.Equal(d) {
		t.Fatalf("Expected %s; got %s", literal.String(c), literal.String(d))
	}
}
