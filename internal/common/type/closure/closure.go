// Released under an MIT license. See LICENSE.

// Package closure provides fp's callback type.
//
// A closure pairs a body, executable only by the host that created it, with
// the scope it captured and the names of its declared parameters.
package closure

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/michaelmacinnis/fp/internal/common"
	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
)

const name = "closure"

// Scope is the host environment captured when a closure is created.
type Scope interface {
	Lookup(name string) (cell.I, bool)
}

// T (closure) is a callback with zero or more declared parameters.
type T struct {
	id     uuid.UUID
	body   common.Stringer
	params []string
	row    bool
	scope  Scope
}

type closure = T

// New creates a closure declaring the parameters params.
func New(params []string, body common.Stringer, s Scope) *closure {
	return &closure{
		id:     uuid.New(),
		body:   body,
		params: slices.Clone(params),
		scope:  s,
	}
}

// Row creates a closure for a row condition: a bare expression that
// declares no parameters and refers to the current item implicitly.
func Row(body common.Stringer, s Scope) *closure {
	c := New(nil, body, s)
	c.row = true

	return c
}

// Body returns the host's representation of the closure's body.
func (c *closure) Body() common.Stringer {
	return c.body
}

// Equal returns true if the cell o is the same closure as c.
func (c *closure) Equal(o cell.I) bool {
	return Is(o) && c.id == To(o).id
}

// ID returns the identity of the closure c.
func (c *closure) ID() uuid.UUID {
	return c.id
}

// Literal returns the source form of the closure c.
func (c *closure) Literal() string {
	b := c.body.String()

	switch {
	case c.row:
		return b
	case len(c.params) == 0:
		return "{ " + b + " }"
	}

	return "{|" + strings.Join(c.params, ", ") + "| " + b + "}"
}

// Name returns the name of the closure type.
func (c *closure) Name() string {
	return name
}

// Params returns the names of the closure's declared parameters.
func (c *closure) Params() []string {
	return slices.Clone(c.params)
}

// Row returns true if the closure c was created from a row condition.
func (c *closure) Row() bool {
	return c.row
}

// Scope returns the scope captured by the closure c.
func (c *closure) Scope() Scope {
	return c.scope
}

// Type returns the type tag for the closure c.
func (c *closure) Type() *tag.T {
	return tag.Closure
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
