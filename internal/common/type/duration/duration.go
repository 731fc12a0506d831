// Released under an MIT license. See LICENSE.

// Package duration provides fp's duration type.
package duration

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "duration"

// Unit is a named number of nanoseconds.
type Unit struct {
	Name  string
	Ticks int64
}

// Units lists duration units from largest to smallest.
//
//nolint:gochecknoglobals
var Units = []Unit{
	{"wk", 7 * 24 * 60 * 60 * 1e9},
	{"day", 24 * 60 * 60 * 1e9},
	{"hr", 60 * 60 * 1e9},
	{"min", 60 * 1e9},
	{"sec", 1e9},
	{"ms", 1e6},
	{"us", 1e3},
	{"ns", 1},
}

// T (duration) is a signed number of nanoseconds.
type T int64

type duration = T

// New creates a new duration of ns nanoseconds.
func New(ns int64) cell.I {
	d := duration(ns)

	return &d
}

// Parse creates a duration from text like 3day, 1.5hr or -10sec.
func Parse(s string) (cell.I, bool) {
	for _, u := range Units {
		n, found := strings.CutSuffix(s, u.Name)
		if !found || n == "" {
			continue
		}

		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return New(i * u.Ticks), true
		}

		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return New(int64(f * float64(u.Ticks))), true
		}

		return nil, false
	}

	return nil, false
}

// Equal returns true if c is a duration of the same length.
func (d *duration) Equal(c cell.I) bool {
	return Is(c) && d.Nanoseconds() == To(c).Nanoseconds()
}

// Literal returns the literal representation of the duration d using the
// largest unit that represents it exactly.
func (d *duration) Literal() string {
	ns := d.Nanoseconds()
	if ns == 0 {
		return "0sec"
	}

	for _, u := range Units {
		if ns%u.Ticks == 0 {
			return strconv.FormatInt(ns/u.Ticks, 10) + u.Name
		}
	}

	return strconv.FormatInt(ns, 10) + "ns"
}

// Name returns the type name for the duration d.
func (d *duration) Name() string {
	return name
}

// Nanoseconds returns the length of the duration d in nanoseconds.
func (d *duration) Nanoseconds() int64 {
	return int64(*d)
}

// String returns the text of the duration d.
func (d *duration) String() string {
	return d.Literal()
}

// Type returns the type tag for the duration d.
func (d *duration) Type() *tag.T {
	return tag.Duration
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t duration

	// The duration type is a cell.
	_ = cell.I(&t)

	// The duration type has a literal representation.
	_ = literal.I(&t)

	// The duration type is a stringer.
	_ = common.Stringer(&t)
}
