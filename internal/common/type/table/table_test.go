package table

import (
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

func person(name string, rank cell.I) *record.T {
	return record.New(
		record.Field{Name: "name", Value: str.New(name)},
		record.Field{Name: "rank", Value: rank},
	)
}

func TestColumnsAndType(t *testing.T) {
	tbl := To(New(
		person("Alice", integer.New(10)),
		person("Bob", float.New(7.5)),
		record.New(record.Field{Name: "team", Value: str.New("red")}),
	))

	cols := tbl.Columns()
	if len(cols) != 3 || cols[0] != "name" || cols[1] != "rank" || cols[2] != "team" {
		t.Fatalf("Unexpected columns %v", cols)
	}

	expected := "table<name: string, rank: number, team: string>"
	if n := tbl.Name(); n != expected {
		t.Fatalf("Expected %s; got %s", expected, n)
	}
}

func TestFromCells(t *testing.T) {
	if _, ok := FromCells([]cell.I{person("Alice", integer.New(1)), str.New("x")}); ok {
		t.Fatal("Expected a non-record to prevent table creation")
	}

	if _, ok := FromCells(nil); ok {
		t.Fatal("Expected no table without rows")
	}

	c, ok := FromCells([]cell.I{person("Alice", integer.New(1))})
	if !ok || To(c).Length() != 1 {
		t.Fatal("Expected a one row table")
	}
}

func TestAllYieldsRows(t *testing.T) {
	alice := person("Alice", integer.New(10))
	tbl := To(New(alice, person("Bob", integer.New(7))))

	for row := range tbl.All() {
		if row != cell.I(alice) {
			t.Fatal("Expected the first row to be the original record")
		}

		break
	}
}
