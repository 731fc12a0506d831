// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all fp values.
package cell

import (
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

// I (cell) is the basic unit of data flowing through a pipeline.
//
// Cells are immutable once created. Name is the text of the cell's type tag.
type I interface {
	Equal(c I) bool
	Name() string
	Type() *tag.T
}
