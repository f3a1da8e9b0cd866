// Package sequence plans and writes seq output.
//
// NewPlan turns the FIRST [INCREMENT] LAST operands into an immutable Plan:
// typed operands, the generation mode, and the width and precision every
// element is rendered with. Write then streams the elements of a Plan to an
// io.Writer.
package sequence

import (
	"fmt"

	"go.uber.org/zap"

	"gseq/internal/logging"
	"gseq/internal/numeric"
)

// Mode selects the arithmetic used to step through a sequence.
type Mode int

const (
	// ModeInteger steps exactly with math/big.
	ModeInteger Mode = iota
	// ModeFloat recomputes first + i*increment in float64.
	ModeFloat
)

func (m Mode) String() string {
	if m == ModeFloat {
		return "float"
	}
	return "integer"
}

// Plan is everything needed to print a sequence. It is not modified after
// NewPlan returns it.
type Plan struct {
	First     numeric.Number
	Increment numeric.Number
	Last      numeric.Number

	Mode Mode

	// Padding is the widest integral part among the operands as typed,
	// sign included. Used only when widths are equalized.
	Padding int

	// Precision is the number of fraction digits printed in float mode.
	Precision int

	// LeadingMinus forces a "-" in front of the first element. It is set
	// when FIRST is negative zero, which the arithmetic cannot carry.
	LeadingMinus bool
}

// operand is one command-line literal with its digit analysis.
type operand struct {
	literal    string
	value      numeric.Number
	fractional int
	integral   int
}

func analyze(literal string, wantFractional bool) (operand, error) {
	op := operand{literal: literal}
	var err error
	if wantFractional {
		if op.fractional, err = numeric.FractionalDigits(literal); err != nil {
			return op, err
		}
	}
	if op.integral, err = numeric.IntegralDigits(literal); err != nil {
		return op, err
	}
	if op.value, err = numeric.ParseNumber(literal); err != nil {
		return op, err
	}
	return op, nil
}

// NewPlan builds a Plan from one to three operands: LAST, FIRST LAST, or
// FIRST INCREMENT LAST. FIRST and INCREMENT default to 1.
//
// Operands are validated in order and the first problem is returned, so a
// zero increment is reported before a malformed LAST. No output is produced
// here; every error NewPlan can return is known before Write starts.
func NewPlan(literals []string) (*Plan, error) {
	switch {
	case len(literals) == 0:
		return nil, ErrMissingOperand
	case len(literals) > 3:
		return nil, &ExtraOperandError{Literal: literals[3]}
	}

	p := &Plan{
		First:     numeric.One(),
		Increment: numeric.One(),
	}

	if len(literals) > 1 {
		first, err := analyze(literals[0], true)
		if err != nil {
			return nil, err
		}
		p.First = first.value
		p.Precision = first.fractional
		p.Padding = first.integral
	}

	if len(literals) > 2 {
		inc, err := analyze(literals[1], true)
		if err != nil {
			return nil, err
		}
		p.Increment = inc.value
		p.Precision = max(p.Precision, inc.fractional)
		p.Padding = max(p.Padding, inc.integral)
		if p.Increment.IsZero() {
			return nil, &ZeroIncrementError{Literal: literals[1]}
		}
	}

	// The precision of LAST never widens the output: "seq 1 2.50" prints
	// 1 and 2.
	last, err := analyze(literals[len(literals)-1], false)
	if err != nil {
		return nil, err
	}
	p.Last = last.value
	p.Padding = max(p.Padding, last.integral)

	p.Mode, p.LeadingMinus = p.selectMode()

	logging.Get(logging.CategoryPlan).Debug("sequence planned",
		zap.Stringer("first", p.First),
		zap.Stringer("increment", p.Increment),
		zap.Stringer("last", p.Last),
		zap.Stringer("mode", p.Mode),
		zap.Int("padding", p.Padding),
		zap.Int("precision", p.Precision),
		zap.Bool("leading_minus", p.LeadingMinus))

	return p, nil
}

// selectMode picks integer arithmetic when every operand is an exact
// integer and nothing asks for fraction digits. A float FIRST of -0.0 typed
// without fraction digits ("-0e0") still qualifies.
func (p *Plan) selectMode() (Mode, bool) {
	negZero := p.First.IsNegativeZero()
	firstIsInt := p.First.IsInteger() || (negZero && p.Precision == 0)
	if firstIsInt && p.Increment.IsInteger() && p.Last.IsInteger() && p.Precision == 0 {
		return ModeInteger, negZero
	}
	return ModeFloat, negZero
}

// String summarizes the plan for logs and error context.
func (p *Plan) String() string {
	return fmt.Sprintf("%s..%s step %s (%s, padding=%d, precision=%d)",
		p.First, p.Last, p.Increment, p.Mode, p.Padding, p.Precision)
}
