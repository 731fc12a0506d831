// Released under an MIT license. See LICENSE.

// Package table provides fp's table type, an ordered sequence of records.
package table

import (
	"iter"
	"slices"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
)

const name = "table"

// T (table) is an immutable, ordered sequence of rows. Every row is a record.
type T struct {
	rows []*record.T
}

type table = T

// New creates a table from rows.
func New(rows ...*record.T) cell.I {
	return &table{rows: slices.Clone(rows)}
}

// FromCells creates a table if cs is not empty and every cell in it is a record.
func FromCells(cs []cell.I) (cell.I, bool) {
	if len(cs) == 0 {
		return nil, false
	}

	rows := make([]*record.T, len(cs))

	for i, c := range cs {
		if !record.Is(c) {
			return nil, false
		}

		rows[i] = record.To(c)
	}

	return &table{rows: rows}, true
}

// All yields each row of the table t in order.
func (t *table) All() iter.Seq[cell.I] {
	return func(yield func(cell.I) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Columns returns the union of the field names of every row, in order of
// first appearance.
func (t *table) Columns() []string {
	seen := map[string]bool{}
	columns := []string{}

	for _, r := range t.rows {
		for _, n := range r.Names() {
			if !seen[n] {
				seen[n] = true
				columns = append(columns, n)
			}
		}
	}

	return columns
}

// Equal returns true if c is a table with equal rows in the same order.
func (t *table) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	return slices.EqualFunc(t.rows, To(c).rows, func(a, b *record.T) bool {
		return a.Equal(b)
	})
}

// Length returns the number of rows in the table t.
func (t *table) Length() int64 {
	return int64(len(t.rows))
}

// Literal returns the literal representation of the table t.
func (t *table) Literal() string {
	parts := make([]string, len(t.rows))
	for i, r := range t.rows {
		parts[i] = r.Literal()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Name returns the type name for the table t.
func (t *table) Name() string {
	return t.Type().String()
}

// Rows returns a copy of the rows of the table t.
func (t *table) Rows() []*record.T {
	return slices.Clone(t.rows)
}

// Type returns the type tag for the table t. Each column's tag is the
// widened tag of the values in that column.
func (t *table) Type() *tag.T {
	columns := t.Columns()
	types := make(map[string]*tag.T, len(columns))

	for _, r := range t.rows {
		for _, f := range r.Fields() {
			types[f.Name] = tag.Widen(types[f.Name], f.Value.Type())
		}
	}

	fs := make([]tag.Field, len(columns))
	for i, n := range columns {
		fs[i] = tag.Field{Name: n, Type: types[n]}
	}

	return tag.Table(fs...)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t table

	// The table type is a cell.
	_ = cell.I(&t)

	// The table type has a literal representation.
	_ = literal.I(&t)

	// The table type is a sequence.
	_ = sequence.I(&t)
}
