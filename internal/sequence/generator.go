package sequence

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"syscall"

	"go.uber.org/zap"

	"gseq/internal/logging"
)

// Write prints every element of p to w. See WriteContext.
func Write(w io.Writer, p *Plan, opts Options) error {
	return WriteContext(context.Background(), w, p, opts)
}

// WriteContext prints every element of p to w, separated by
// opts.Separator and followed by opts.Terminator. An empty sequence writes
// nothing at all.
//
// Output is buffered and flushed before returning, on error paths too. A
// broken pipe means the reader went away and is not an error. Cancelling
// ctx stops the sequence between two elements and returns ctx.Err().
func WriteContext(ctx context.Context, w io.Writer, p *Plan, opts Options) (err error) {
	bw := bufio.NewWriter(w)
	e := &emitter{
		ctx:          ctx,
		w:            bw,
		opts:         opts,
		width:        fieldWidth(p, opts),
		leadingMinus: p.LeadingMinus,
	}

	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
		log := logging.Get(logging.CategoryGenerate)
		if isBrokenPipe(err) {
			log.Debug("output closed by reader", zap.Int("written", e.count))
			err = nil
			return
		}
		log.Debug("sequence written", zap.Int("written", e.count), zap.Error(err))
	}()

	if p.Mode == ModeInteger {
		err = e.integers(p)
	} else {
		err = e.floats(p)
	}
	if err != nil {
		return err
	}
	return e.finish()
}

// emitter writes elements and tracks how many have been written.
type emitter struct {
	ctx          context.Context
	w            *bufio.Writer
	opts         Options
	width        int
	leadingMinus bool
	count        int
}

// integers steps with exact arithmetic: v, v+inc, v+2inc, ...
func (e *emitter) integers(p *Plan) error {
	inc := p.Increment.Int()
	last := p.Last.Int()
	ascending := inc.Sign() >= 0

	for v := p.First.Int(); !past(v.Cmp(last), ascending); v.Add(v, inc) {
		if err := e.element(v.String()); err != nil {
			return err
		}
	}
	return nil
}

// floats computes element i as first + i*inc instead of accumulating, so
// rounding error does not build up over long sequences. A NaN element
// (inf + -inf) ends the sequence.
func (e *emitter) floats(p *Plan) error {
	first := p.First.Float64()
	inc := p.Increment.Float64()
	last := p.Last.Float64()
	ascending := inc >= 0

	for i := 0; ; i++ {
		// 0*inf is NaN, so the first element is FIRST itself.
		v := first
		if i > 0 {
			v = first + float64(i)*inc
		}
		if math.IsNaN(v) || past(compareFloat(v, last), ascending) {
			return nil
		}
		if e.count == 0 && e.leadingMinus {
			v = math.Abs(v)
		}
		if err := e.element(formatFloat(v, p.Precision)); err != nil {
			return err
		}
	}
}

// past reports whether a value compared against LAST has run beyond it.
func past(cmp int, ascending bool) bool {
	if ascending {
		return cmp > 0
	}
	return cmp < 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (e *emitter) element(digits string) error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.count > 0 {
		if _, err := e.w.WriteString(e.opts.Separator); err != nil {
			return err
		}
	}
	width := e.width
	if e.count == 0 && e.leadingMinus {
		if err := e.w.WriteByte('-'); err != nil {
			return err
		}
		width--
	}
	e.count++
	_, err := e.w.WriteString(zeroPad(digits, width))
	return err
}

func (e *emitter) finish() error {
	if e.count == 0 {
		return nil
	}
	_, err := e.w.WriteString(e.opts.Terminator)
	return err
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
