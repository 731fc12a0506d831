// Released under an MIT license. See LICENSE.

// Package list provides fp's list type, an ordered sequence of cells.
package list

import (
	"iter"
	"slices"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "list"

// T (list) is an immutable, ordered sequence of cells.
type T struct {
	items []cell.I
}

type list = T

// New creates a list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &list{items: slices.Clone(elements)}
}

// All yields each element of the list l in order.
func (l *list) All() iter.Seq[cell.I] {
	return slices.Values(l.items)
}

// Equal returns true if c is a list with equal elements in the same order.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	return slices.EqualFunc(l.items, To(c).items, func(a, b cell.I) bool {
		return a.Equal(b)
	})
}

// Get returns the element at index i, if there is one.
// Negative values of i count backwards from the end of the list.
func (l *list) Get(i int64) (cell.I, bool) {
	n := int64(len(l.items))
	if i < 0 {
		i += n
	}

	if i < 0 || i >= n {
		return nil, false
	}

	return l.items[i], true
}

// Items returns a copy of the elements of the list l.
func (l *list) Items() []cell.I {
	return slices.Clone(l.items)
}

// Length returns the number of elements in the list l.
func (l *list) Length() int64 {
	return int64(len(l.items))
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	parts := make([]string, len(l.items))
	for i, c := range l.items {
		parts[i] = literal.String(c)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Name returns the type name for the list l, e.g. list<int>.
func (l *list) Name() string {
	return l.Type().String()
}

// Type returns the type tag for the list l. The element tag is the widened
// tag of every element; an empty list is a list<any>.
func (l *list) Type() *tag.T {
	var elem *tag.T
	for _, c := range l.items {
		elem = tag.Widen(elem, c.Type())
	}

	return tag.List(elem)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a sequence.
	_ = sequence.I(&t)
}
