// Released under an MIT license. See LICENSE.

// Package record provides fp's record type, an ordered mapping of names to cells.
package record

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "record"

// Field is a single named value in a record.
type Field struct {
	Name  string
	Value cell.I
}

// T (record) is an immutable, ordered mapping with unique names.
type T struct {
	fields []Field
}

type record = T

// New creates a record from fs. When a name repeats, the last value wins
// but the name keeps the position of its first appearance.
func New(fs ...Field) *T {
	r := &record{fields: make([]Field, 0, len(fs))}

	for _, f := range fs {
		i := r.index(f.Name)
		if i < 0 {
			r.fields = append(r.fields, f)
		} else {
			r.fields[i].Value = f.Value
		}
	}

	return r
}

// Equal returns true if c is a record with the same names, in the same
// order, associated with equal values.
func (r *record) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	return slices.EqualFunc(r.fields, To(c).fields, func(a, b Field) bool {
		return a.Name == b.Name && a.Value.Equal(b.Value)
	})
}

// Fields returns a copy of the fields of the record r.
func (r *record) Fields() []Field {
	return slices.Clone(r.fields)
}

// Get returns the value associated with the name n.
func (r *record) Get(n string) (cell.I, bool) {
	i := r.index(n)
	if i < 0 {
		return nil, false
	}

	return r.fields[i].Value, true
}

// Length returns the number of fields in the record r.
func (r *record) Length() int64 {
	return int64(len(r.fields))
}

// Literal returns the literal representation of the record r.
func (r *record) Literal() string {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		parts[i] = Key(f.Name) + ": " + literal.String(f.Value)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Name returns the type name for the record r.
func (r *record) Name() string {
	return r.Type().String()
}

// Names returns the names of the fields of the record r, in order.
func (r *record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}

	return names
}

// Type returns the type tag for the record r.
func (r *record) Type() *tag.T {
	fs := make([]tag.Field, len(r.fields))
	for i, f := range r.fields {
		fs[i] = tag.Field{Name: f.Name, Type: f.Value.Type()}
	}

	return tag.Record(fs...)
}

// Key returns n as it would appear as a key in a record literal.
func Key(n string) string {
	if n == "" {
		return `""`
	}

	for _, r := range n {
		if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return strconv.Quote(n)
		}
	}

	return n
}

func (r *record) index(n string) int {
	return slices.IndexFunc(r.fields, func(f Field) bool {
		return f.Name == n
	})
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t record

	// The record type is a cell.
	_ = cell.I(&t)

	// The record type has a literal representation.
	_ = literal.I(&t)
}
