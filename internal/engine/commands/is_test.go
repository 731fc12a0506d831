package commands

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/list"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/type/table"
	"github.com/michaelmacinnis/fp/internal/common/validate"
)

func TestMatches(t *testing.T) {
	ints := list.New(integer.New(1), integer.New(2))
	mixed := list.New(integer.New(1), str.New("a"))
	rec := record.New(record.Field{Name: "name", Value: str.New("a")})
	tbl := table.New(rec)

	tests := []struct {
		c         cell.I
		requested string
		expected  bool
	}{
		{integer.New(1), "int", true},
		{integer.New(1), "string", false},
		{integer.New(1), "number", false},
		{float.New(1), "float", true},
		{nothing.Null, "nothing", true},
		{ints, "list", true},
		{ints, "list<int>", true},
		{ints, "list<string>", false},
		{ints, "list< int >", false},
		{mixed, "list<any>", true},
		{mixed, "list", true},
		{list.New(), "list", true},
		{rec, "record", true},
		{rec, "record<name: string>", true},
		{rec, "table", false},
		{tbl, "table", true},
		{tbl, "list", true},
		{tbl, "table<name: string>", true},
		{tbl, "record", false},
		{integer.New(1), "widget", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.c, tt.requested); got != tt.expected {
			t.Errorf("Matches(%s, %q): expected %v, got %v", tt.c.Name(), tt.requested, tt.expected, got)
		}
	}
}

func TestIsCommand(t *testing.T) {
	v, err := is(&host{}, with(str.New("int")), integer.New(1))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if v != boolean.True {
		t.Fatalf("Expected true; got %v", v)
	}
}

func TestIsRequiresString(t *testing.T) {
	_, err := is(&host{}, with(integer.New(1)), integer.New(1))
	if !errors.Is(err, validate.ErrArgument) {
		t.Fatalf("Expected an argument error; got %v", err)
	}

	_, err = is(&host{}, with(), integer.New(1))
	if !errors.Is(err, validate.ErrArgument) || !errors.Is(err, errMissing) {
		t.Fatalf("Expected a missing argument error; got %v", err)
	}
}
