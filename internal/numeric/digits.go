package numeric

import (
	"math"
	"strconv"
	"strings"
)

// FractionalDigits returns how many digits the literal specifies after the
// decimal point, after accounting for a decimal exponent.
//
//	"1.25"    -> 2
//	"1.25e1"  -> 1
//	"5e-3"    -> 3
//	"1e2"     -> 0
//
// It works on the text as typed, so trailing zeros count ("2.50" -> 2).
func FractionalDigits(literal string) (int, error) {
	dot, exp := markers(literal)
	switch {
	case dot < 0 && exp < 0:
		return 0, nil
	case exp < 0:
		return len(literal) - (dot + 1), nil
	case dot < 0:
		e, err := exponent(literal, exp)
		if err != nil {
			return 0, err
		}
		if e < 0 {
			return int(-e), nil
		}
		return 0, nil
	case dot < exp:
		e, err := exponent(literal, exp)
		if err != nil {
			return 0, err
		}
		between := int64(exp - (dot + 1))
		if between < e {
			return 0, nil
		}
		return int(between - e), nil
	default:
		// Decimal point inside the exponent.
		return 0, &ParseError{Literal: literal, Kind: KindFloat}
	}
}

// IntegralDigits returns how many characters the literal occupies before
// the decimal point, after accounting for a decimal exponent. A leading sign
// counts towards the width, matching how zero padding is sized.
//
//	"10"      -> 2
//	"-3.5"    -> 2
//	"1e2"     -> 3
//	"1e-2"    -> 1
//	"-0.0e-1" -> 2
func IntegralDigits(literal string) (int, error) {
	dot, exp := markers(literal)
	switch {
	case dot < 0 && exp < 0:
		return len(literal), nil
	case exp < 0:
		return dot, nil
	case dot < 0:
		e, err := exponent(literal, exp)
		if err != nil {
			return 0, err
		}
		if e < 0 {
			return 1, nil
		}
		return exp + int(e), nil
	case dot < exp:
		e, err := exponent(literal, exp)
		if err != nil {
			return 0, err
		}
		mantissa, err := strconv.ParseFloat(literal[:exp], 64)
		if err != nil {
			return 0, &ParseError{Literal: literal, Kind: KindFloat}
		}
		minimum := int64(1)
		if mantissa == 0 && math.Signbit(mantissa) {
			minimum = 2
		}
		total := int64(dot) + e
		if total < minimum {
			return int(minimum), nil
		}
		return int(total), nil
	default:
		return 0, &ParseError{Literal: literal, Kind: KindFloat}
	}
}

// markers locates the decimal point and the exponent marker, -1 if absent.
func markers(literal string) (dot, exp int) {
	return strings.IndexByte(literal, '.'), strings.IndexAny(literal, "eE")
}

func exponent(literal string, exp int) (int64, error) {
	e, err := strconv.ParseInt(literal[exp+1:], 10, 64)
	if err != nil {
		return 0, &ParseError{Literal: literal, Kind: KindFloat}
	}
	return e, nil
}
