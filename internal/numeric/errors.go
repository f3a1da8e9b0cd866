package numeric

import "fmt"

// ErrorKind classifies why a literal could not be used as a number.
type ErrorKind int

const (
	// KindFloat means the literal is neither an integer nor a float.
	KindFloat ErrorKind = iota
	// KindNaN means the literal parsed as a float but is not-a-number.
	KindNaN
	// KindHex is reserved for hexadecimal literals. The parser never
	// produces it; hexadecimal input is reported as KindFloat.
	KindHex
)

// String returns the user-facing category text for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNaN:
		return "invalid 'not-a-number' argument"
	case KindHex:
		return "invalid hexadecimal argument"
	default:
		return "invalid floating point argument"
	}
}

// ParseError reports a literal that failed digit analysis or parsing.
type ParseError struct {
	Literal string
	Kind    ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, Quote(e.Literal))
}

// Quote wraps a literal in single quotes the way seq echoes arguments back.
func Quote(s string) string {
	return "'" + s + "'"
}
