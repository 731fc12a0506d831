// Released under an MIT license. See LICENSE.

// Package rng provides fp's integer range type.
package rng

import (
	"iter"
	"math"
	"strconv"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
)

const name = "range"

// T (rng) is a lazily produced run of integers.
type T struct {
	start     int64
	step      int64
	end       int64
	bounded   bool
	inclusive bool
}

type rng = T

// New creates a range from start to end. When step is zero it is 1 for
// ascending ranges and -1 for descending ranges.
func New(start, step, end int64, inclusive bool) cell.I {
	if step == 0 {
		step = 1
		if end < start {
			step = -1
		}
	}

	return &rng{
		start:     start,
		step:      step,
		end:       end,
		bounded:   true,
		inclusive: inclusive,
	}
}

// Unbounded creates a range that counts from start by step forever.
// A zero step counts by 1.
func Unbounded(start, step int64) cell.I {
	if step == 0 {
		step = 1
	}

	return &rng{start: start, step: step}
}

// All yields each integer in the range r. Nothing is precomputed.
func (r *rng) All() iter.Seq[cell.I] {
	return func(yield func(cell.I) bool) {
		for i := r.start; r.contains(i); i += r.step {
			if !yield(integer.New(i)) {
				return
			}

			if r.step > 0 && i > math.MaxInt64-r.step ||
				r.step < 0 && i < math.MinInt64-r.step {
				return
			}
		}
	}
}

// Equal returns true if c is a range with the same bounds and step.
func (r *rng) Equal(c cell.I) bool {
	return Is(c) && *r == *To(c)
}

// Literal returns the literal representation of the range r.
func (r *rng) Literal() string {
	s := strconv.FormatInt(r.start, 10)

	step := int64(1)
	if r.bounded && r.end < r.start {
		step = -1
	}

	if r.step != step {
		s += ".." + strconv.FormatInt(r.start+r.step, 10)
	}

	s += ".."

	if !r.bounded {
		return s
	}

	if !r.inclusive {
		s += "<"
	}

	return s + strconv.FormatInt(r.end, 10)
}

// Name returns the type name for the range r.
func (r *rng) Name() string {
	return name
}

// Type returns the type tag for the range r.
func (r *rng) Type() *tag.T {
	return tag.Range
}

func (r *rng) contains(i int64) bool {
	switch {
	case !r.bounded:
		return true
	case r.inclusive && r.step > 0:
		return i <= r.end
	case r.inclusive:
		return i >= r.end
	case r.step > 0:
		return i < r.end
	}

	return i > r.end
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t rng

	// The rng type is a cell.
	_ = cell.I(&t)

	// The rng type has a literal representation.
	_ = literal.I(&t)

	// The rng type is a sequence.
	_ = sequence.I(&t)
}
