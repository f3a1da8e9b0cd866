package sequence

import (
	"errors"
	"fmt"

	"gseq/internal/numeric"
)

// ErrMissingOperand is returned when no operands were supplied.
var ErrMissingOperand = errors.New("missing operand")

// ZeroIncrementError reports an increment that evaluates to zero.
type ZeroIncrementError struct {
	Literal string
}

func (e *ZeroIncrementError) Error() string {
	return fmt.Sprintf("invalid Zero increment value: %s", numeric.Quote(e.Literal))
}

// ExtraOperandError reports the first operand beyond FIRST INCREMENT LAST.
type ExtraOperandError struct {
	Literal string
}

func (e *ExtraOperandError) Error() string {
	return fmt.Sprintf("extra operand %s", numeric.Quote(e.Literal))
}

// IsUsageError reports whether err stems from bad operands, as opposed to
// an output failure. Usage errors are all detected before anything is
// written.
func IsUsageError(err error) bool {
	var (
		parseErr *numeric.ParseError
		zeroErr  *ZeroIncrementError
		extraErr *ExtraOperandError
	)
	return errors.Is(err, ErrMissingOperand) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &zeroErr) ||
		errors.As(err, &extraErr)
}
