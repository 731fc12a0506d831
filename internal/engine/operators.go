// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/michaelmacinnis/fp/internal/common/interface/cell"
	"github.com/michaelmacinnis/fp/internal/common/interface/sequence"
	"github.com/michaelmacinnis/fp/internal/common/type/boolean"
	"github.com/michaelmacinnis/fp/internal/common/type/duration"
	"github.com/michaelmacinnis/fp/internal/common/type/filesize"
	"github.com/michaelmacinnis/fp/internal/common/type/float"
	"github.com/michaelmacinnis/fp/internal/common/type/integer"
	"github.com/michaelmacinnis/fp/internal/common/type/num"
	"github.com/michaelmacinnis/fp/internal/common/type/record"
	"github.com/michaelmacinnis/fp/internal/common/type/rng"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

var errDivide = errors.New("division by zero")

func mismatch(op string, cs ...cell.I) error {
	ns := make([]string, len(cs))
	for i, c := range cs {
		ns[i] = c.Name()
	}

	return fmt.Errorf("%w: %s does not apply to %s", errType, op, strings.Join(ns, " and "))
}

func (e *engine) operate(op string, l, r cell.I) (cell.I, error) {
	switch op {
	case "==":
		return boolean.Bool(equal(l, r)), nil
	case "!=":
		return boolean.Bool(!equal(l, r)), nil
	case "<", "<=", ">", ">=":
		return order(op, l, r)
	case "=~", "!~":
		return e.match(op, l, r)
	case "in", "not-in":
		found, err := contains(op, r, l)
		if err != nil {
			return nil, err
		}

		return boolean.Bool(found == (op == "in")), nil
	case "starts-with", "ends-with":
		if !str.Is(l) || !str.Is(r) {
			return nil, mismatch(op, l, r)
		}

		a, b := str.To(l).String(), str.To(r).String()
		if op == "starts-with" {
			return boolean.Bool(strings.HasPrefix(a, b)), nil
		}

		return boolean.Bool(strings.HasSuffix(a, b)), nil
	case "and", "or", "xor":
		if !boolean.Is(l) || !boolean.Is(r) {
			return nil, mismatch(op, l, r)
		}

		a, b := boolean.IsTrue(l), boolean.IsTrue(r)

		switch op {
		case "and":
			return boolean.Bool(a && b), nil
		case "or":
			return boolean.Bool(a || b), nil
		}

		return boolean.Bool(a != b), nil
	}

	return arithmetic(op, l, r)
}

func arithmetic(op string, l, r cell.I) (cell.I, error) {
	switch {
	case integer.Is(l) && integer.Is(r):
		return integers(op, integer.To(l).Int(), integer.To(r).Int())
	case float.Is(l) && numeric(r), float.Is(r) && numeric(l):
		return floats(op, toFloat(l), toFloat(r))
	case numeric(l) && numeric(r):
		return rationals(op, toRat(l), toRat(r))
	case str.Is(l) && str.Is(r) && op == "+":
		return str.New(str.To(l).String() + str.To(r).String()), nil
	case duration.Is(l) || duration.Is(r):
		return durations(op, l, r)
	case filesize.Is(l) || filesize.Is(r):
		return filesizes(op, l, r)
	}

	return nil, mismatch(op, l, r)
}

func integers(op string, a, b int64) (cell.I, error) {
	switch op {
	case "+":
		if s := a + b; (s > a) == (b > 0) {
			return integer.New(s), nil
		}
	case "-":
		if d := a - b; (d < a) == (b > 0) {
			return integer.New(d), nil
		}
	case "*":
		if a == 0 || b == 0 {
			return integer.New(0), nil
		}

		if p := a * b; p/b == a && !(a == -1 && b == math.MinInt64) && !(b == -1 && a == math.MinInt64) {
			return integer.New(p), nil
		}
	case "/":
		if b == 0 {
			return nil, errDivide
		}

		if a%b != 0 {
			return float.New(float64(a) / float64(b)), nil
		}

		if a != math.MinInt64 || b != -1 {
			return integer.New(a / b), nil
		}
	case "//":
		if b == 0 {
			return nil, errDivide
		}

		if a != math.MinInt64 || b != -1 {
			q := a / b
			if a%b != 0 && (a < 0) != (b < 0) {
				q--
			}

			return integer.New(q), nil
		}
	case "mod":
		if b == 0 {
			return nil, errDivide
		}

		if b == -1 {
			return integer.New(0), nil
		}

		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}

		return integer.New(m), nil
	case "**":
		if b < 0 {
			return float.New(math.Pow(float64(a), float64(b))), nil
		}

		p := new(big.Int).Exp(big.NewInt(a), big.NewInt(b), nil)
		if p.IsInt64() {
			return integer.New(p.Int64()), nil
		}

		return num.Rat(new(big.Rat).SetInt(p)), nil
	default:
		return nil, mismatch(op, integer.New(a), integer.New(b))
	}

	// The result does not fit in an int.
	return rationals(op, new(big.Rat).SetInt64(a), new(big.Rat).SetInt64(b))
}

func floats(op string, a, b float64) (cell.I, error) {
	switch op {
	case "+":
		return float.New(a + b), nil
	case "-":
		return float.New(a - b), nil
	case "*":
		return float.New(a * b), nil
	case "/":
		if b == 0 {
			return nil, errDivide
		}

		return float.New(a / b), nil
	case "//":
		if b == 0 {
			return nil, errDivide
		}

		return float.New(math.Floor(a / b)), nil
	case "mod":
		if b == 0 {
			return nil, errDivide
		}

		return float.New(a - b*math.Floor(a/b)), nil
	case "**":
		return float.New(math.Pow(a, b)), nil
	}

	return nil, mismatch(op, float.New(a), float.New(b))
}

func rationals(op string, a, b *big.Rat) (cell.I, error) {
	r := new(big.Rat)

	switch op {
	case "+":
		r.Add(a, b)
	case "-":
		r.Sub(a, b)
	case "*":
		r.Mul(a, b)
	case "/":
		if b.Sign() == 0 {
			return nil, errDivide
		}

		r.Quo(a, b)
	default:
		fa, _ := a.Float64()
		fb, _ := b.Float64()

		return floats(op, fa, fb)
	}

	return number(r), nil
}

func durations(op string, l, r cell.I) (cell.I, error) {
	switch {
	case duration.Is(l) && duration.Is(r):
		a, b := duration.To(l).Nanoseconds(), duration.To(r).Nanoseconds()

		switch op {
		case "+":
			return duration.New(a + b), nil
		case "-":
			return duration.New(a - b), nil
		case "/":
			if b == 0 {
				return nil, errDivide
			}

			return float.New(float64(a) / float64(b)), nil
		}
	case duration.Is(l) && integer.Is(r), integer.Is(l) && duration.Is(r):
		d, n := l, r
		if integer.Is(l) {
			d, n = r, l
		}

		a, b := duration.To(d).Nanoseconds(), integer.To(n).Int()

		switch {
		case op == "*":
			return duration.New(a * b), nil
		case op == "/" && d == l:
			if b == 0 {
				return nil, errDivide
			}

			return duration.New(a / b), nil
		}
	}

	return nil, mismatch(op, l, r)
}

func filesizes(op string, l, r cell.I) (cell.I, error) {
	switch {
	case filesize.Is(l) && filesize.Is(r):
		a, b := filesize.To(l).Bytes(), filesize.To(r).Bytes()

		switch op {
		case "+":
			return filesize.New(a + b), nil
		case "-":
			if b > a {
				return nil, fmt.Errorf("%w: negative file size", errType)
			}

			return filesize.New(a - b), nil
		case "/":
			if b == 0 {
				return nil, errDivide
			}

			return float.New(float64(a) / float64(b)), nil
		}
	case filesize.Is(l) && integer.Is(r), integer.Is(l) && filesize.Is(r):
		f, n := l, r
		if integer.Is(l) {
			f, n = r, l
		}

		a, b := filesize.To(f).Bytes(), integer.To(n).Int()
		if b < 0 {
			return nil, fmt.Errorf("%w: negative file size", errType)
		}

		switch {
		case op == "*":
			return filesize.New(a * uint64(b)), nil
		case op == "/" && f == l:
			if b == 0 {
				return nil, errDivide
			}

			return filesize.New(a / uint64(b)), nil
		}
	}

	return nil, mismatch(op, l, r)
}

func negate(v cell.I) (cell.I, error) {
	switch {
	case integer.Is(v):
		i := integer.To(v).Int()
		if i == math.MinInt64 {
			return num.Rat(new(big.Rat).Neg(toRat(v))), nil
		}

		return integer.New(-i), nil
	case float.Is(v):
		return float.New(-float.To(v).Float()), nil
	case num.Is(v):
		return number(new(big.Rat).Neg(toRat(v))), nil
	case duration.Is(v):
		return duration.New(-duration.To(v).Nanoseconds()), nil
	}

	return nil, mismatch("-", v)
}

// equal compares numbers by value and everything else with Equal.
func equal(l, r cell.I) bool {
	if numeric(l) && numeric(r) {
		c, ok := compare(l, r)

		return ok && c == 0
	}

	return l.Equal(r)
}

func order(op string, l, r cell.I) (cell.I, error) {
	c, ok, err := ordered(l, r)
	if err != nil {
		return nil, mismatch(op, l, r)
	}

	if !ok {
		return boolean.False, nil
	}

	switch op {
	case "<":
		return boolean.Bool(c < 0), nil
	case "<=":
		return boolean.Bool(c <= 0), nil
	case ">":
		return boolean.Bool(c > 0), nil
	}

	return boolean.Bool(c >= 0), nil
}

// ordered compares l and r. It returns false if either is NaN and an error
// if l and r cannot be ordered.
func ordered(l, r cell.I) (int, bool, error) {
	switch {
	case numeric(l) && numeric(r):
		c, ok := compare(l, r)

		return c, ok, nil
	case str.Is(l) && str.Is(r):
		return strings.Compare(str.To(l).String(), str.To(r).String()), true, nil
	case duration.Is(l) && duration.Is(r):
		return cmp(duration.To(l).Nanoseconds(), duration.To(r).Nanoseconds()), true, nil
	case filesize.Is(l) && filesize.Is(r):
		return cmp(filesize.To(l).Bytes(), filesize.To(r).Bytes()), true, nil
	}

	return 0, false, errType
}

func compare(l, r cell.I) (int, bool) {
	switch {
	case integer.Is(l) && integer.Is(r):
		return cmp(integer.To(l).Int(), integer.To(r).Int()), true
	case float.Is(l) || float.Is(r):
		a, b := toFloat(l), toFloat(r)
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, false
		}

		return cmp(a, b), true
	}

	return toRat(l).Cmp(toRat(r)), true
}

func cmp[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func contains(op string, haystack, needle cell.I) (bool, error) {
	switch {
	case str.Is(haystack):
		if !str.Is(needle) {
			return false, mismatch(op, needle, haystack)
		}

		return strings.Contains(str.To(haystack).String(), str.To(needle).String()), nil
	case record.Is(haystack):
		if !str.Is(needle) {
			return false, mismatch(op, needle, haystack)
		}

		_, ok := record.To(haystack).Get(str.To(needle).String())

		return ok, nil
	case rng.Is(haystack):
		// Ranges may be unbounded.
		return false, mismatch(op, needle, haystack)
	}

	items, ok := sequence.Of(haystack)
	if !ok {
		return false, mismatch(op, needle, haystack)
	}

	for item := range items {
		if equal(needle, item) {
			return true, nil
		}
	}

	return false, nil
}

func (e *engine) match(op string, l, r cell.I) (cell.I, error) {
	if !str.Is(l) || !str.Is(r) {
		return nil, mismatch(op, l, r)
	}

	p := str.To(r).String()

	re, ok := e.patterns[p]
	if !ok {
		var err error

		re, err = regexp.Compile(p)
		if err != nil {
			return nil, err
		}

		e.patterns[p] = re
	}

	return boolean.Bool(re.MatchString(str.To(l).String()) == (op == "=~")), nil
}

func numeric(c cell.I) bool {
	return integer.Is(c) || float.Is(c) || num.Is(c)
}

// number returns r as an int when it is one that fits.
func number(r *big.Rat) cell.I {
	if r.IsInt() && r.Num().IsInt64() {
		return integer.New(r.Num().Int64())
	}

	return num.Rat(r)
}

func toFloat(c cell.I) float64 {
	switch {
	case integer.Is(c):
		return float64(integer.To(c).Int())
	case float.Is(c):
		return float.To(c).Float()
	case num.Is(c):
		return num.To(c).Float()
	}

	return math.NaN()
}

func toRat(c cell.I) *big.Rat {
	switch {
	case integer.Is(c):
		return new(big.Rat).SetInt64(integer.To(c).Int())
	case num.Is(c):
		return num.To(c).Rat()
	}

	return new(big.Rat).SetFloat64(toFloat(c))
}
