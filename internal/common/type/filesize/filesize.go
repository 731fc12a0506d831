// Released under an MIT license. See LICENSE.

// Package filesize provides fp's byte size type.
package filesize

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "filesize"

// Units that may follow the digits of a filesize literal. Decimal units are
// powers of 1000 and binary units are powers of 1024.
//
//nolint:gochecknoglobals
var units = []string{
	"kib", "mib", "gib", "tib", "pib", "eib",
	"kb", "mb", "gb", "tb", "pb", "eb",
	"b",
}

// Zero is the canonical zero byte size.
//
//nolint:gochecknoglobals
var Zero = New(0)

// T (filesize) is a number of bytes.
type T uint64

type filesize = T

// New creates a new filesize of n bytes.
func New(n uint64) cell.I {
	f := filesize(n)

	return &f
}

// Parse creates a filesize from text like 0b, 10kb or 1.5mib.
func Parse(s string) (cell.I, bool) {
	l := strings.ToLower(s)

	for _, u := range units {
		n, found := strings.CutSuffix(l, u)
		if !found || n == "" {
			continue
		}

		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return nil, false
		}

		b, err := humanize.ParseBytes(l)
		if err != nil {
			return nil, false
		}

		return New(b), true
	}

	return nil, false
}

// Bytes returns the size of the filesize f in bytes.
func (f *filesize) Bytes() uint64 {
	return uint64(*f)
}

// Equal returns true if c is a filesize of the same size.
func (f *filesize) Equal(c cell.I) bool {
	return Is(c) && f.Bytes() == To(c).Bytes()
}

// Literal returns the literal representation of the filesize f.
func (f *filesize) Literal() string {
	n := f.Bytes()

	for i, u := range []string{"eb", "pb", "tb", "gb", "mb", "kb"} {
		p := uint64(1)
		for j := 0; j < 6-i; j++ {
			p *= 1000
		}

		if n != 0 && n%p == 0 {
			return strconv.FormatUint(n/p, 10) + u
		}
	}

	return strconv.FormatUint(n, 10) + "b"
}

// Name returns the type name for the filesize f.
func (f *filesize) Name() string {
	return name
}

// String returns a human readable form of the filesize f.
func (f *filesize) String() string {
	return humanize.Bytes(f.Bytes())
}

// Type returns the type tag for the filesize f.
func (f *filesize) Type() *tag.T {
	return tag.Filesize
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t filesize

	// The filesize type is a cell.
	_ = cell.I(&t)

	// The filesize type has a literal representation.
	_ = literal.I(&t)

	// The filesize type is a stringer.
	_ = common.Stringer(&t)
}
