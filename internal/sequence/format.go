package sequence

import (
	"math"
	"strconv"
	"strings"
)

// Options are the output settings chosen on the command line.
type Options struct {
	// Separator is written between elements.
	Separator string
	// Terminator is written once after the last element.
	Terminator string
	// EqualWidth zero-pads every element to the same width.
	EqualWidth bool
}

// DefaultOptions matches plain "seq": one number per line, no padding.
func DefaultOptions() Options {
	return Options{Separator: "\n", Terminator: "\n"}
}

// fieldWidth is the padded width of an element, or 0 when elements are not
// padded. Float elements reserve room for the point and fraction digits.
func fieldWidth(p *Plan, opts Options) int {
	if !opts.EqualWidth {
		return 0
	}
	if p.Mode == ModeFloat && p.Precision > 0 {
		return p.Padding + 1 + p.Precision
	}
	return p.Padding
}

// formatFloat renders v with exactly prec fraction digits.
func formatFloat(v float64, prec int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// zeroPad left-pads s with zeros to width, keeping a leading minus in
// front of the zeros. Infinities are never padded.
func zeroPad(s string, width int) string {
	if len(s) >= width || strings.HasSuffix(s, "inf") {
		return s
	}
	zeros := strings.Repeat("0", width-len(s))
	if strings.HasPrefix(s, "-") {
		return "-" + zeros + s[1:]
	}
	return zeros + s
}
