// Package numeric interprets the numeric literals accepted by seq.
//
// A literal becomes a Number, a tagged value that is either an exact
// arbitrary-precision integer, an IEEE-754 double, or the integer negative
// zero written as "-0". The package also inspects the literal text itself
// (FractionalDigits, IntegralDigits) because output precision and padding
// depend on how a number was typed, not only on its value.
package numeric

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Tag identifies which variant a Number holds.
type Tag int

const (
	// TagInteger is an exact integer of unbounded magnitude.
	TagInteger Tag = iota
	// TagFloat is an IEEE-754 double.
	TagFloat
	// TagNegativeZero is the integer zero typed as "-0".
	TagNegativeZero
)

func (t Tag) String() string {
	switch t {
	case TagFloat:
		return "float"
	case TagNegativeZero:
		return "negative-zero"
	default:
		return "integer"
	}
}

// Number is a parsed seq operand. The zero value is not meaningful; use
// ParseNumber, NewInteger, NewFloat or NegativeZero.
type Number struct {
	tag Tag
	i   *big.Int
	f   float64
}

// NewInteger returns an exact integer Number. The argument is copied.
func NewInteger(n *big.Int) Number {
	return Number{tag: TagInteger, i: new(big.Int).Set(n)}
}

// NewFloat returns a floating point Number.
func NewFloat(f float64) Number {
	return Number{tag: TagFloat, f: f}
}

// NegativeZero returns the "-0" marker.
func NegativeZero() Number {
	return Number{tag: TagNegativeZero}
}

// One is the default first and increment operand.
func One() Number {
	return Number{tag: TagInteger, i: big.NewInt(1)}
}

// Tag reports the variant.
func (n Number) Tag() Tag { return n.tag }

// IsInteger reports whether the value is an exact integer, counting "-0".
func (n Number) IsInteger() bool {
	return n.tag == TagInteger || n.tag == TagNegativeZero
}

// IsZero reports whether the value equals zero, whatever its sign.
func (n Number) IsZero() bool {
	switch n.tag {
	case TagInteger:
		return n.i.Sign() == 0
	case TagFloat:
		return n.f == 0
	default:
		return true
	}
}

// IsNegativeZero reports whether the value is "-0" or a float -0.0.
func (n Number) IsNegativeZero() bool {
	switch n.tag {
	case TagNegativeZero:
		return true
	case TagFloat:
		return n.f == 0 && math.Signbit(n.f)
	default:
		return false
	}
}

// Int returns the value as a new big.Int. Negative zero becomes 0 and
// floats are floored; infinities saturate to the int64 range.
func (n Number) Int() *big.Int {
	switch n.tag {
	case TagInteger:
		return new(big.Int).Set(n.i)
	case TagFloat:
		f := math.Floor(n.f)
		switch {
		case math.IsNaN(f):
			return new(big.Int)
		case f >= math.MaxInt64:
			return big.NewInt(math.MaxInt64)
		case f <= math.MinInt64:
			return big.NewInt(math.MinInt64)
		}
		return big.NewInt(int64(f))
	default:
		return new(big.Int)
	}
}

// Float64 returns the nearest double. Negative zero becomes -0.0.
func (n Number) Float64() float64 {
	switch n.tag {
	case TagInteger:
		f, _ := new(big.Float).SetInt(n.i).Float64()
		return f
	case TagFloat:
		return n.f
	default:
		return math.Copysign(0, -1)
	}
}

// String renders the value without any precision or padding.
func (n Number) String() string {
	switch n.tag {
	case TagInteger:
		return n.i.String()
	case TagFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	default:
		return "-0"
	}
}

// Equal reports whether two numbers have the same tag and value. Floats
// compare with ==, so 0.0 equals -0.0.
func (n Number) Equal(o Number) bool {
	if n.tag != o.tag {
		return false
	}
	switch n.tag {
	case TagInteger:
		return n.i.Cmp(o.i) == 0
	case TagFloat:
		return n.f == o.f
	default:
		return true
	}
}

// ParseNumber converts a literal into a Number.
//
// Leading whitespace and a single leading '+' are ignored. The literal is
// tried as a base-10 integer first so that integers beyond float precision
// stay exact, then as a float. "nan" is rejected with KindNaN; anything else
// that is not a number, hexadecimal and '_' separated digits included, is
// rejected with KindFloat.
func ParseNumber(literal string) (Number, error) {
	s := strings.TrimLeftFunc(literal, unicode.IsSpace)
	s = strings.TrimPrefix(s, "+")

	if i, ok := new(big.Int).SetString(s, 10); ok {
		if i.Sign() == 0 && strings.HasPrefix(s, "-") {
			return NegativeZero(), nil
		}
		return Number{tag: TagInteger, i: i}, nil
	}

	// strconv follows Go literal syntax, which also allows hex floats and
	// '_' digit separators.
	if isHex(s) || strings.ContainsRune(s, '_') {
		return Number{}, &ParseError{Literal: literal, Kind: KindFloat}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, &ParseError{Literal: literal, Kind: KindFloat}
	}
	if math.IsNaN(f) {
		return Number{}, &ParseError{Literal: literal, Kind: KindNaN}
	}
	return NewFloat(f), nil
}

// isHex catches the hexadecimal float forms strconv accepts ("0x1p-2").
func isHex(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
