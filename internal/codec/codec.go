// Released under an MIT license. See LICENSE.

// Package codec converts between fp values and YAML or JSON documents.
//
// Decoding works on yaml.Node trees rather than Go maps so that record
// fields keep the order they have in the document. JSON is decoded by the
// same code since every JSON document is also a YAML document.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/literal"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/closure"
	"github.com/michaelmacinnis/fp/internal/common/type/duration"
	"github.com/michaelmacinnis/fp/internal/common/type/errsys"
	"github.com/michaelmacinnis/fp/internal/common/type/filesize"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/list"
	"github.com/michaelmacinnis/fp/internal/common/type/nothing"
	"github.com/michaelmacinnis/fp/internal/common/type/num"
	"github.com/michaelmacinnis/fp/internal/common/type/other"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/rng"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
	"github.com/michaelmacinnis/fp/internal/common/type/table"
)

var (
	// ErrDecode is wrapped by every decoding failure.
	ErrDecode = errors.New("cannot decode")

	// ErrEncode is wrapped by every encoding failure.
	ErrEncode = errors.New("cannot encode")
)

//nolint:gochecknoglobals
var (
	// Inputs lists the formats accepted by Decode.
	Inputs = []string{"json", "yaml"}

	// Outputs lists the formats accepted by Encode.
	Outputs = []string{"json", "nuon", "yaml"}
)

// Decode converts the document text, written in format, to a value.
// An empty document decodes to null.
func Decode(format, text string) (cell.I, error) {
	switch format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrDecode, format)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, format, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nothing.Null, nil
	}

	return decode(doc.Content[0])
}

// Encode converts c to a document in format.
// The nuon format is fp's own literal syntax.
func Encode(format string, c cell.I) (string, error) {
	switch format {
	case "json":
		var b bytes.Buffer
		if err := writeJSON(&b, c, ""); err != nil {
			return "", err
		}

		return b.String(), nil
	case "nuon":
		return literal.String(c), nil
	case "yaml":
		n, err := encode(c)
		if err != nil {
			return "", err
		}

		var b bytes.Buffer

		e := yaml.NewEncoder(&b)
		e.SetIndent(2)

		if err := e.Encode(n); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncode, err)
		}

		if err := e.Close(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncode, err)
		}

		return strings.TrimSuffix(b.String(), "\n"), nil
	}

	return "", fmt.Errorf("%w: unknown format %q", ErrEncode, format)
}

func decode(n *yaml.Node) (cell.I, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decode(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nothing.Null, nil
		}

		return decode(n.Content[0])
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.SequenceNode:
		items := make([]cell.I, len(n.Content))

		for i, c := range n.Content {
			v, err := decode(c)
			if err != nil {
				return nil, err
			}

			items[i] = v
		}

		if t, ok := table.FromCells(items); ok {
			return t, nil
		}

		return list.New(items...), nil
	}

	return nil, fmt.Errorf("%w: line %d: unexpected node", ErrDecode, n.Line)
}

func decodeMapping(n *yaml.Node) (cell.I, error) {
	fs := make([]record.Field, 0, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if k.Kind == yaml.ScalarNode && k.Tag == "!!merge" {
			m, err := decode(v)
			if err != nil {
				return nil, err
			}

			if r, ok := m.(*record.T); ok {
				fs = append(fs, r.Fields()...)

				continue
			}
		}

		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: keys must be scalars", ErrDecode, k.Line)
		}

		c, err := decode(v)
		if err != nil {
			return nil, err
		}

		fs = append(fs, record.Field{Name: k.Value, Value: c})
	}

	return record.New(fs...), nil
}

func decodeScalar(n *yaml.Node) (cell.I, error) {
	switch n.ShortTag() {
	case "!!null":
		return nothing.Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDecode, n.Line, err)
		}

		return boolean.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return integer.New(i), nil
		}

		// Too large for an int64.
		if v, ok := num.New(n.Value); ok {
			return v, nil
		}

		return nil, fmt.Errorf("%w: line %d: invalid int %q", ErrDecode, n.Line, n.Value)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDecode, n.Line, err)
		}

		return float.New(f), nil
	case "!!str":
		return str.New(n.Value), nil
	case "!!binary":
		return other.New("binary", n.Value), nil
	case "!!timestamp":
		return other.New("date", n.Value), nil
	}

	return other.New(strings.TrimPrefix(n.Tag, "!"), n.Value), nil
}

func encode(c cell.I) (*yaml.Node, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch v := c.(type) {
	case *boolean.T:
		return scalar("!!bool", v.String()), nil
	case *closure.T:
		return nil, fmt.Errorf("%w: closure", ErrEncode)
	case *duration.T, *filesize.T:
		return scalar("!!str", literal.String(v)), nil
	case *errsys.T, *other.T:
		return scalar("!!str", fmt.Sprint(v)), nil
	case *float.T:
		return scalar("!!float", yamlFloat(v.Float())), nil
	case *integer.T:
		return scalar("!!int", v.String()), nil
	case *nothing.T:
		return scalar("!!null", "null"), nil
	case *num.T:
		if v.Rat().IsInt() {
			return scalar("!!int", v.String()), nil
		}

		return scalar("!!float", v.String()), nil
	case *record.T:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, f := range v.Fields() {
			e, err := encode(f.Value)
			if err != nil {
				return nil, err
			}

			m.Content = append(m.Content, scalar("!!str", f.Name), e)
		}

		return m, nil
	case *rng.T:
		return scalar("!!str", v.Literal()), nil
	case *str.T:
		return scalar("!!str", v.String()), nil
	}

	items, ok := sequence.Of(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEncode, c.Name())
	}

	s := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for item := range items {
		e, err := encode(item)
		if err != nil {
			return nil, err
		}

		s.Content = append(s.Content, e)
	}

	return s, nil
}

func writeJSON(b *bytes.Buffer, c cell.I, indent string) error {
	switch v := c.(type) {
	case *boolean.T:
		b.WriteString(v.String())
	case *closure.T:
		return fmt.Errorf("%w: closure", ErrEncode)
	case *float.T:
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %s is not valid JSON", ErrEncode, v.Literal())
		}

		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case *integer.T:
		b.WriteString(v.String())
	case *nothing.T:
		b.WriteString("null")
	case *num.T:
		b.WriteString(v.String())
	case *record.T:
		return writeObject(b, v, indent)
	case *rng.T:
		return writeString(b, v.Literal())
	case *str.T:
		return writeString(b, v.String())
	case *duration.T, *filesize.T:
		return writeString(b, literal.String(v))
	case *errsys.T, *other.T:
		return writeString(b, fmt.Sprint(v))
	default:
		return writeArray(b, c, indent)
	}

	return nil
}

func writeArray(b *bytes.Buffer, c cell.I, indent string) error {
	items, ok := sequence.Of(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEncode, c.Name())
	}

	inner := indent + "  "
	n := 0

	b.WriteString("[")

	for item := range items {
		if n > 0 {
			b.WriteString(",")
		}

		n++

		b.WriteString("\n" + inner)

		if err := writeJSON(b, item, inner); err != nil {
			return err
		}
	}

	if n > 0 {
		b.WriteString("\n" + indent)
	}

	b.WriteString("]")

	return nil
}

func writeObject(b *bytes.Buffer, r *record.T, indent string) error {
	fs := r.Fields()
	if len(fs) == 0 {
		b.WriteString("{}")

		return nil
	}

	inner := indent + "  "

	b.WriteString("{")

	for i, f := range fs {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString("\n" + inner)

		if err := writeString(b, f.Name); err != nil {
			return err
		}

		b.WriteString(": ")

		if err := writeJSON(b, f.Value, inner); err != nil {
			return err
		}
	}

	b.WriteString("\n" + indent + "}")

	return nil
}

func writeString(b *bytes.Buffer, s string) error {
	q, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	b.Write(q)

	return nil
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
