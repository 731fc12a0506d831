// Released under an MIT license. See LICENSE.

// Package tag provides the runtime type tags carried by every fp value.
//
// A tag is a kind plus, for lists, an element tag and, for records and
// tables, an ordered list of fields. Tags render to the text used by the
// is command (int, list<int>, record<name: string>, ...) and answer
// structural subtype queries.
package tag

import (
	"strings"
)

type kind uint8

const (
	anyKind kind = iota
	boolKind
	closureKind
	durationKind
	errorKind
	filesizeKind
	floatKind
	intKind
	listKind
	nothingKind
	numberKind
	otherKind
	rangeKind
	recordKind
	stringKind
	tableKind
)

//nolint:gochecknoglobals
var names = map[kind]string{
	anyKind:      "any",
	boolKind:     "bool",
	closureKind:  "closure",
	durationKind: "duration",
	errorKind:    "error",
	filesizeKind: "filesize",
	floatKind:    "float",
	intKind:      "int",
	listKind:     "list",
	nothingKind:  "nothing",
	numberKind:   "number",
	rangeKind:    "range",
	recordKind:   "record",
	stringKind:   "string",
	tableKind:    "table",
}

// Field is a named, typed member of a record or table tag.
type Field struct {
	Name string
	Type *T
}

// T (tag) is a runtime type tag.
type T struct {
	kind   kind
	name   string  // Preserved type name for other tags.
	elem   *T      // Element tag for lists.
	fields []Field // Fields for records and tables.
}

type tag = T

//nolint:gochecknoglobals
var (
	Any      = &tag{kind: anyKind}
	Bool     = &tag{kind: boolKind}
	Closure  = &tag{kind: closureKind}
	Duration = &tag{kind: durationKind}
	Error    = &tag{kind: errorKind}
	Filesize = &tag{kind: filesizeKind}
	Float    = &tag{kind: floatKind}
	Int      = &tag{kind: intKind}
	Nothing  = &tag{kind: nothingKind}
	Number   = &tag{kind: numberKind}
	Range    = &tag{kind: rangeKind}
	String   = &tag{kind: stringKind}

	// The generic structural categories.
	GenericList   = List(Any)
	GenericRecord = Record()
	GenericTable  = Table()
)

// List creates a list tag with the element tag elem.
func List(elem *tag) *tag {
	if elem == nil {
		elem = Any
	}

	return &tag{kind: listKind, elem: elem}
}

// Named creates a tag for a type that has no structure beyond its name.
func Named(name string) *tag {
	switch name {
	case "list":
		return GenericList
	case "record":
		return GenericRecord
	case "table":
		return GenericTable
	}

	for k, v := range names {
		if v == name {
			return &tag{kind: k}
		}
	}

	return &tag{kind: otherKind, name: name}
}

// Record creates a record tag with the fields fs.
func Record(fs ...Field) *tag {
	return &tag{kind: recordKind, fields: append([]Field(nil), fs...)}
}

// Table creates a table tag with the columns fs.
func Table(fs ...Field) *tag {
	return &tag{kind: tableKind, fields: append([]Field(nil), fs...)}
}

// Equal returns true if the tags t and u are identical.
func (t *tag) Equal(u *tag) bool {
	if t == u {
		return true
	}

	if t == nil || u == nil || t.kind != u.kind || t.name != u.name {
		return false
	}

	if t.kind == listKind {
		return t.elem.Equal(u.elem)
	}

	if len(t.fields) != len(u.fields) {
		return false
	}

	for i, f := range t.fields {
		g := u.fields[i]
		if f.Name != g.Name || !f.Type.Equal(g.Type) {
			return false
		}
	}

	return true
}

// Field returns the tag for the field named n and whether it was found.
func (t *tag) Field(n string) (*tag, bool) {
	for _, f := range t.fields {
		if f.Name == n {
			return f.Type, true
		}
	}

	return nil, false
}

// Fields returns a copy of a record or table tag's fields.
func (t *tag) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// String returns the canonical text for the tag t.
func (t *tag) String() string {
	switch t.kind {
	case otherKind:
		return t.name
	case listKind:
		return "list<" + t.elem.String() + ">"
	case recordKind, tableKind:
		if len(t.fields) == 0 {
			return names[t.kind]
		}

		parts := make([]string, len(t.fields))
		for i, f := range t.fields {
			parts[i] = f.Name + ": " + f.Type.String()
		}

		return names[t.kind] + "<" + strings.Join(parts, ", ") + ">"
	}

	return names[t.kind]
}

// SubtypeOf returns true if a value tagged t can be used where u is expected.
func (t *tag) SubtypeOf(u *tag) bool {
	switch {
	case u.kind == anyKind:
		return true
	case t.Equal(u):
		return true
	case u.kind == numberKind:
		return t.kind == intKind || t.kind == floatKind
	case u.kind == listKind && t.kind == listKind:
		return t.elem.SubtypeOf(u.elem)
	case u.kind == listKind && t.kind == tableKind:
		return Record(t.fields...).SubtypeOf(u.elem)
	case u.kind == recordKind && t.kind == recordKind,
		u.kind == tableKind && t.kind == tableKind:
		return t.covers(u.fields)
	}

	return false
}

// Widen returns the narrowest tag that both t and u are subtypes of.
func Widen(t, u *tag) *tag {
	switch {
	case t == nil:
		return u
	case u == nil:
		return t
	case t.Equal(u):
		return t
	case numeric(t) && numeric(u):
		return Number
	}

	return Any
}

func (t *tag) covers(fs []Field) bool {
	for _, f := range fs {
		g, ok := t.Field(f.Name)
		if !ok || !g.SubtypeOf(f.Type) {
			return false
		}
	}

	return true
}

func numeric(t *tag) bool {
	return t.kind == intKind || t.kind == floatKind || t.kind == numberKind
}
