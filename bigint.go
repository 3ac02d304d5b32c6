package bigint

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/bigint/deque"
)

// digit is a single decimal digit in the range [0, 9].
type digit = uint8

// Int is a representation of an arbitrary-precision signed integer.
// The zero value of Int is the numeric value 0.
//
// An Int is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: a sequence of decimal digits, most significant first.
//
// The magnitude is always normalized: it contains at least one digit and
// no leading zeros, and the value 0 is represented by the single digit 0
// with a non-negative sign. All methods are pure: they never mutate their
// operands and construct fresh results instead.
type Int struct {
	neg bool                // indicates whether the integer is negative
	mag *deque.Deque[digit] // decimal digits of the magnitude, most significant first
}

var (
	// ErrInt64Range indicates a conversion of a value that does not fit
	// into an int64.
	ErrInt64Range = errors.New("value out of int64 range")
	// ErrInvalidInteger indicates text that does not represent a valid
	// integer.
	ErrInvalidInteger = errors.New("invalid integer")
)

// digits returns the magnitude of x, materializing the canonical single-0
// magnitude for the zero value. Callers must not mutate the result of an
// operand and must reuse one returned deque per operand when comparing
// iterators against its end sentinel.
func (x Int) digits() *deque.Deque[digit] {
	if x.mag == nil {
		q := &deque.Deque[digit]{}
		q.PushFront(0)
		return q
	}
	return x.mag
}

// New returns an Int representing n.
func New(n int64) Int {
	z := Int{mag: &deque.Deque[digit]{}}
	if n == math.MinInt64 {
		// |math.MinInt64| overflows int64, so the lowest digit is peeled
		// off before the remainder is negated.
		z.mag.PushFront(digit(-(n % 10)))
		n /= 10
	}
	if n < 0 {
		z.neg = true
		n = -n
	}
	for {
		z.mag.PushFront(digit(n % 10))
		n /= 10
		if n == 0 {
			break
		}
	}
	return z
}

var (
	minInt64 = New(math.MinInt64)
	maxInt64 = New(math.MaxInt64)
)

// Int64 returns the int64 value of x.
// It returns [ErrInt64Range] if x does not fit into an int64; x itself is
// never affected by the conversion.
func (x Int) Int64() (int64, error) {
	if maxInt64.Less(x) || x.Less(minInt64) {
		return 0, ErrInt64Range
	}
	// Accumulate on the negative side, where math.MinInt64 is reachable.
	var r int64
	xd := x.digits()
	for it := xd.Begin(); !it.Equal(xd.End()); it = mustNext(it) {
		r = r*10 - int64(mustValue(it))
	}
	if !x.neg {
		r = -r
	}
	return r, nil
}

// NumDigits returns the number of decimal digits in the magnitude of x.
// The result is at least 1; the value 0 has one digit.
func (x Int) NumDigits() int {
	return x.digits().Len()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	if x.mag == nil {
		return true
	}
	f, err := x.mag.Front()
	if err != nil {
		panic(fmt.Sprintf("IsZero() failed: %v", err))
	}
	return x.mag.Len() == 1 && f == 0
}

// Neg returns x with its sign flipped. The negation of 0 is 0.
func (x Int) Neg() Int {
	return Int{neg: !x.neg && !x.IsZero(), mag: x.digits().Clone()}
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	return Int{mag: x.digits().Clone()}
}

// CopySign returns x with the same sign as y.
// If y is zero, the sign of the result remains unchanged.
func (x Int) CopySign(y Int) Int {
	switch {
	case y.IsZero():
		return x
	case x.IsNeg() != y.IsNeg():
		return x.Neg()
	default:
		return x
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// A negative integer is less than any non-negative one. For operands of
// equal sign, the longer magnitude is the larger one for positive values
// and the smaller one for negative values; magnitudes of equal length are
// compared digit by digit from the most significant end.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := cmpMag(x.digits(), y.digits())
	if x.neg {
		return -r
	}
	return r
}

// Equal reports whether x and y represent the same integer.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less reports whether x is less than y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Max returns the maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the minimum of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
