package tag

import (
	"testing"
)

func TestString(t *testing.T) {
	for _, c := range []struct {
		tag  *T
		text string
	}{
		{Int, "int"},
		{Named("date"), "date"},
		{Named("float"), "float"},
		{List(Int), "list<int>"},
		{List(nil), "list<any>"},
		{List(List(String)), "list<list<string>>"},
		{Record(), "record"},
		{Record(Field{"name", String}, Field{"rank", Int}), "record<name: string, rank: int>"},
		{Table(), "table"},
		{Table(Field{"a", Int}), "table<a: int>"},
	} {
		if s := c.tag.String(); s != c.text {
			t.Fatalf("Expected %q; got %q", c.text, s)
		}
	}
}

func TestSubtypeOf(t *testing.T) {
	alice := Record(Field{"name", String}, Field{"rank", Int})
	people := Table(Field{"name", String}, Field{"rank", Int})

	for _, c := range []struct {
		label    string
		t, u     *T
		expected bool
	}{
		{"int is any", Int, Any, true},
		{"int is number", Int, Number, true},
		{"float is number", Float, Number, true},
		{"number is not int", Number, Int, false},
		{"string is not int", String, Int, false},
		{"typed list is list", List(Int), GenericList, true},
		{"list of int is list of number", List(Int), List(Number), true},
		{"list of number is not list of int", List(Number), List(Int), false},
		{"record is record", alice, GenericRecord, true},
		{"empty record is record", Record(), GenericRecord, true},
		{"record is not table", alice, GenericTable, false},
		{"table is table", people, GenericTable, true},
		{"table is list", people, GenericList, true},
		{"table is list of record", people, List(GenericRecord), true},
		{"table is not record", people, GenericRecord, false},
		{"list is not table", List(Int), GenericTable, false},
		{"record with fewer fields", Record(Field{"name", String}), alice, false},
		{"record with more fields", alice, Record(Field{"rank", Int}), true},
		{"record with wrong field type", alice, Record(Field{"rank", String}), false},
		{"named types match by name", Named("date"), Named("date"), true},
		{"named types differ by name", Named("date"), Named("glob"), false},
	} {
		if actual := c.t.SubtypeOf(c.u); actual != c.expected {
			t.Fatalf("%s: expected %v; got %v", c.label, c.expected, actual)
		}
	}
}

func TestWiden(t *testing.T) {
	if w := Widen(nil, Int); w != Int {
		t.Fatalf("Expected int; got %v", w)
	}

	if w := Widen(Int, Int); w != Int {
		t.Fatalf("Expected int; got %v", w)
	}

	if w := Widen(Int, Float); w != Number {
		t.Fatalf("Expected number; got %v", w)
	}

	if w := Widen(Int, String); w != Any {
		t.Fatalf("Expected any; got %v", w)
	}

	if w := Widen(List(Int), List(Int)); !w.Equal(List(Int)) {
		t.Fatalf("Expected list<int>; got %v", w)
	}
}
