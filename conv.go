package bigint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/govalues/bigint/deque"
)

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of x: a minus sign for negative values, followed by the
// digits from the most significant one down, with no leading zeros.
// The value 0 formats as "0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	xd := x.digits()
	for it := xd.Begin(); !it.Equal(xd.End()); it = mustNext(it) {
		b.WriteByte('0' + mustValue(it))
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v, %d: -123456
//	%q:        "-123456"
//
// The '+' and ' ' flags print a sign for non-negative values, and a width
// pads with leading spaces (or trailing spaces with the '-' flag).
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd', 'q':
		// supported
	default:
		fmt.Fprintf(state, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}

	s := x.String()
	if !x.neg {
		switch {
		case state.Flag('+'):
			s = "+" + s
		case state.Flag(' '):
			s = " " + s
		}
	}
	if verb == 'q' {
		s = `"` + s + `"`
	}

	w, ok := state.Width()
	switch {
	case !ok || w <= len(s):
		io.WriteString(state, s)
	case state.Flag('-'):
		io.WriteString(state, s)
		io.WriteString(state, strings.Repeat(" ", w-len(s)))
	default:
		io.WriteString(state, strings.Repeat(" ", w-len(s)))
		io.WriteString(state, s)
	}
}

// Read scans an integer from the longest possible prefix of r.
//
// Leading whitespace is skipped. A minus sign is consumed only when at
// least one digit follows it; a lone minus sign is left unconsumed and
// the result is 0. Leading zero digits are discarded, scanning stops in
// front of the first non-digit character, and if no digit was found at
// all the result is 0. Read fails only when r fails with an error other
// than [io.EOF].
func Read(r *bufio.Reader) (Int, error) {
	z, _, err := scanReader(r)
	return z, err
}

// Parse converts a string to an Int. Unlike [Read], the entire string
// must be consumed: text left over after the scanned prefix, or text
// containing no digits at all, yields [ErrInvalidInteger].
func Parse(s string) (Int, error) {
	r := bufio.NewReader(strings.NewReader(s))
	z, sawDigit, err := scanReader(r)
	if err != nil {
		return Int{}, err
	}
	if !sawDigit {
		return Int{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidInteger)
	}
	if b, err := r.ReadByte(); err == nil {
		return Int{}, fmt.Errorf("unexpected character %q in %q: %w", b, s, ErrInvalidInteger)
	}
	return z, nil
}

// scanReader implements the scan behind Read and Parse. It additionally
// reports whether any digit, including a discarded leading zero, was
// consumed.
func scanReader(r *bufio.Reader) (Int, bool, error) {
	mag := &deque.Deque[digit]{}
	neg := false
	sawDigit := false

	// Whitespace
	for {
		buf, err := r.Peek(1)
		if len(buf) == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				return Int{}, false, err
			}
			break
		}
		if !isSpace(buf[0]) {
			break
		}
		discard(r, 1)
	}

	// Sign, consumed only together with a following digit
	if buf, _ := r.Peek(2); len(buf) == 2 && buf[0] == '-' && isDigit(buf[1]) {
		neg = true
		discard(r, 1)
	}

	// Leading zeros
	for {
		buf, _ := r.Peek(1)
		if len(buf) == 0 || buf[0] != '0' {
			break
		}
		sawDigit = true
		discard(r, 1)
	}

	// Digits
	for {
		buf, _ := r.Peek(1)
		if len(buf) == 0 || !isDigit(buf[0]) {
			break
		}
		sawDigit = true
		mag.PushBack(buf[0] - '0')
		discard(r, 1)
	}

	if mag.Len() == 0 {
		mag.PushBack(0)
		neg = false
	}
	return Int{neg: neg, mag: mag}, sawDigit, nil
}

// discard drops n buffered bytes previously seen through Peek.
func discard(r *bufio.Reader, n int) {
	if _, err := r.Discard(n); err != nil {
		panic(fmt.Sprintf("discarding %d peeked byte(s) failed: %v", n, err))
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
