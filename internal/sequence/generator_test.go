package sequence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, opts Options, literals ...string) string {
	t.Helper()
	p, err := NewPlan(literals)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p, opts))
	return buf.String()
}

func widths() Options {
	opts := DefaultOptions()
	opts.EqualWidth = true
	return opts
}

func TestWriteSequences(t *testing.T) {
	cases := []struct {
		name     string
		opts     Options
		literals []string
		want     []string
	}{
		{"last only", DefaultOptions(), []string{"5"}, []string{"1", "2", "3", "4", "5"}},
		{"first last", DefaultOptions(), []string{"3", "6"}, []string{"3", "4", "5", "6"}},
		{"descending", DefaultOptions(), []string{"10", "-3", "1"}, []string{"10", "7", "4", "1"}},
		{"negative range", DefaultOptions(), []string{"-2", "0"}, []string{"-2", "-1", "0"}},
		{"step overshoots", DefaultOptions(), []string{"1", "4", "10"}, []string{"1", "5", "9"}},
		{"equal width", widths(), []string{"8", "10"}, []string{"08", "09", "10"}},
		{"equal width negative", widths(), []string{"-1", "1"}, []string{"-1", "00", "01"}},
		{"equal width leading zeros typed", widths(), []string{"1", "003"}, []string{"001", "002", "003"}},
		{"half steps", DefaultOptions(), []string{"0", "0.5", "2"}, []string{"0.0", "0.5", "1.0", "1.5", "2.0"}},
		{"tenths without drift", DefaultOptions(), []string{"0", "0.1", "1"},
			[]string{"0.0", "0.1", "0.2", "0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9", "1.0"}},
		{"float equal width", widths(), []string{"-1", "0.5", "1"}, []string{"-1.0", "-0.5", "00.0", "00.5", "01.0"}},
		{"float last is floored", DefaultOptions(), []string{"1", "2.5"}, []string{"1", "2"}},
		{"float mode without fraction digits", widths(), []string{"1e0", "10"},
			[]string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10"}},
		{"exponent operands", DefaultOptions(), []string{"1e2", "5e1", "2e2"}, []string{"100", "150", "200"}},
		{"exponent precision", DefaultOptions(), []string{"0", "25e-2", "0.5"}, []string{"0.00", "0.25", "0.50"}},
		{"negative zero marker", DefaultOptions(), []string{"-0", "1", "3"}, []string{"-0", "1", "2", "3"}},
		{"negative zero marker padded", widths(), []string{"-0", "1", "3"}, []string{"-0", "01", "02", "03"}},
		{"negative zero exponent", DefaultOptions(), []string{"-0e0", "1", "2"}, []string{"-0", "1", "2"}},
		{"negative zero float", DefaultOptions(), []string{"-0.0", "1", "2"}, []string{"-0.0", "1.0", "2.0"}},
		{"negative zero descending", DefaultOptions(), []string{"-0.0", "-0.5", "-1"}, []string{"-0.0", "-0.5", "-1.0"}},
		{"infinite increment", DefaultOptions(), []string{"1", "inf", "5"}, []string{"1"}},
		{"negative infinity first", DefaultOptions(), []string{"-inf", "inf", "0"}, []string{"-inf"}},
		{"beyond int64", DefaultOptions(), []string{"18446744073709551615", "18446744073709551617"},
			[]string{"18446744073709551615", "18446744073709551616", "18446744073709551617"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, tc.opts, tc.literals...)
			want := strings.Join(tc.want, "\n") + "\n"
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("seq %v mismatch (-want +got):\n%s", tc.literals, diff)
			}
		})
	}
}

func TestWriteEmptySequenceWritesNothing(t *testing.T) {
	for _, literals := range [][]string{
		{"5", "1"},
		{"1", "-1", "5"},
		{"2", "-0.5", "3"},
		{"0"},
	} {
		t.Run(strings.Join(literals, " "), func(t *testing.T) {
			opts := Options{Separator: ",", Terminator: "END", EqualWidth: true}
			assert.Empty(t, render(t, opts, literals...))
		})
	}
}

func TestWriteSeparatorAndTerminator(t *testing.T) {
	got := render(t, Options{Separator: ", ", Terminator: "."}, "1", "3")
	assert.Equal(t, "1, 2, 3.", got)

	got = render(t, Options{Separator: "", Terminator: ""}, "1", "3")
	assert.Equal(t, "123", got)

	got = render(t, Options{Separator: "|", Terminator: "\n"}, "7", "7")
	assert.Equal(t, "7\n", got)
}

func TestWriteCountMatchesRange(t *testing.T) {
	triples := [][3]int64{
		{1, 1, 10}, {1, 3, 10}, {10, -2, -3}, {-5, 7, 30}, {0, 5, 0}, {3, 1, 2}, {-1, -1, 1},
	}
	for _, tr := range triples {
		first, inc, last := tr[0], tr[1], tr[2]
		t.Run(fmt.Sprint(tr), func(t *testing.T) {
			got := render(t, Options{Separator: "\n", Terminator: "\n"},
				fmt.Sprint(first), fmt.Sprint(inc), fmt.Sprint(last))

			want := 0
			if (inc > 0 && first <= last) || (inc < 0 && first >= last) {
				want = int((last-first)/inc) + 1
			}
			assert.Equal(t, want, strings.Count(got, "\n"))
		})
	}
}

func TestWriteIsIdempotent(t *testing.T) {
	p, err := NewPlan([]string{"-0", "0.25", "3"})
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, p, widths()))
	require.NoError(t, Write(&b, p, widths()))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteRoundTrip(t *testing.T) {
	p, err := NewPlan([]string{"99999999999999999990", "3", "100000000000000000000"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p, DefaultOptions()))

	lines := strings.Fields(buf.String())
	require.NotEmpty(t, lines)
	for i, line := range lines {
		n, err := NewPlan([]string{line})
		require.NoError(t, err)
		want := new(big.Int).Add(p.First.Int(), big.NewInt(int64(3*i)))
		assert.Zero(t, want.Cmp(n.Last.Int()), "line %d: %s", i, line)
	}
}

func TestWriteLongSequenceCrossesBuffer(t *testing.T) {
	got := render(t, DefaultOptions(), "10000")
	assert.Equal(t, 10000, strings.Count(got, "\n"))
	assert.True(t, strings.HasSuffix(got, "\n9999\n10000\n"))
}

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit int
	err   error
	buf   bytes.Buffer
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		return 0, w.err
	}
	return w.buf.Write(p)
}

func TestWriteBrokenPipeIsSuccess(t *testing.T) {
	p, err := NewPlan([]string{"100000"})
	require.NoError(t, err)

	pipeErr := &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}
	w := &failingWriter{limit: 8192, err: pipeErr}
	assert.NoError(t, Write(w, p, DefaultOptions()))
}

func TestWriteSurfacesOtherErrors(t *testing.T) {
	p, err := NewPlan([]string{"100000"})
	require.NoError(t, err)

	diskFull := errors.New("no space left on device")
	w := &failingWriter{limit: 8192, err: diskFull}
	err = Write(w, p, DefaultOptions())
	assert.ErrorIs(t, err, diskFull)
	assert.False(t, IsUsageError(err))
}

func TestWriteErrorOnFlush(t *testing.T) {
	p, err := NewPlan([]string{"3"})
	require.NoError(t, err)

	closed := errors.New("closed")
	w := &failingWriter{limit: 0, err: closed}
	assert.ErrorIs(t, Write(w, p, DefaultOptions()), closed)
}

func TestWriteContextCancelled(t *testing.T) {
	p, err := NewPlan([]string{"inf"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = WriteContext(ctx, &buf, p, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestZeroPad(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"5", 3, "005"},
		{"-5", 3, "-05"},
		{"123", 2, "123"},
		{"1.5", 5, "001.5"},
		{"-0.5", 5, "-00.5"},
		{"inf", 5, "inf"},
		{"-inf", 6, "-inf"},
		{"7", 0, "7"},
		{"7", -1, "7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, zeroPad(tc.in, tc.width), "zeroPad(%q, %d)", tc.in, tc.width)
	}
}

func TestFieldWidth(t *testing.T) {
	cases := []struct {
		name string
		plan Plan
		want int
	}{
		{"integer", Plan{Mode: ModeInteger, Padding: 3}, 3},
		{"float with fraction", Plan{Mode: ModeFloat, Padding: 2, Precision: 2}, 5},
		{"float without fraction", Plan{Mode: ModeFloat, Padding: 2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fieldWidth(&tc.plan, widths()))
			assert.Zero(t, fieldWidth(&tc.plan, DefaultOptions()))
		})
	}
}
