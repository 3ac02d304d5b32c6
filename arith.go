package bigint

import (
	"fmt"

	"github.com/govalues/bigint/deque"
)

// The iterator positions reached by the arithmetic kernels are always
// valid, so the must helpers convert the impossible errors into panics.

func mustValue(it deque.Iterator[digit]) digit {
	v, err := it.Value()
	if err != nil {
		panic(fmt.Sprintf("reading digit failed: %v", err))
	}
	return v
}

func mustNext(it deque.Iterator[digit]) deque.Iterator[digit] {
	next, err := it.Next()
	if err != nil {
		panic(fmt.Sprintf("advancing iterator failed: %v", err))
	}
	return next
}

func mustPrev(it deque.Iterator[digit]) deque.Iterator[digit] {
	prev, err := it.Prev()
	if err != nil {
		panic(fmt.Sprintf("retreating iterator failed: %v", err))
	}
	return prev
}

// Add returns the sum x + y.
//
// Operands of equal sign add their magnitudes and keep the common sign;
// operands of differing sign subtract the smaller magnitude from the
// larger, and the operand holding the larger magnitude decides the sign.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return Int{neg: x.neg, mag: addMag(x.digits(), y.digits())}
	}
	return subSigned(x, y)
}

// Sub returns the difference x - y.
func (x Int) Sub(y Int) Int {
	if x.neg != y.neg {
		return Int{neg: x.neg, mag: addMag(x.digits(), y.digits())}
	}
	return subSigned(x, y)
}

// subSigned computes x - y for same-sign operands and x + y for
// differing-sign operands, both of which reduce to a magnitude
// difference. The result is negative exactly when the operand holding
// the larger magnitude was originally negative, except that a zero
// result is always non-negative. A magnitude tie counts as x holding
// the larger magnitude.
func subSigned(x, y Int) Int {
	xd, yd := x.digits(), y.digits()
	largerIsX := cmpMag(xd, yd) >= 0
	var z Int
	if largerIsX {
		z = Int{mag: subMag(xd, yd)}
	} else {
		z = Int{mag: subMag(yd, xd)}
	}
	if !z.IsZero() {
		z.neg = (x.neg && largerIsX) || (!x.neg && !largerIsX)
	}
	return z
}

// Mul returns the product x * y using schoolbook long multiplication.
// The sign of the product is the exclusive or of the operand signs.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	xd, yd := x.digits(), y.digits()
	acc := &deque.Deque[digit]{}
	shift := 0
	for yi := yd.Last(); !yi.Equal(yd.End()); yi = mustPrev(yi) {
		part := &deque.Deque[digit]{}
		carry := digit(0)
		for xi := xd.Last(); !xi.Equal(xd.End()); xi = mustPrev(xi) {
			p := mustValue(xi)*mustValue(yi) + carry
			part.PushFront(p % 10)
			carry = p / 10
		}
		if carry > 0 {
			part.PushFront(carry)
		}
		// Shift the partial product by the weight of the multiplier digit.
		for i := 0; i < shift; i++ {
			part.PushBack(0)
		}
		acc = addMag(acc, part)
		shift++
	}
	return Int{neg: x.neg != y.neg, mag: acc}
}

// addMag returns the magnitude sum of x and y. The operands are walked
// simultaneously from the least significant digit toward the most
// significant one with carry propagation; a final carry produces an extra
// leading digit.
func addMag(x, y *deque.Deque[digit]) *deque.Deque[digit] {
	z := &deque.Deque[digit]{}
	carry := digit(0)
	xi, yi := x.Last(), y.Last()
	for !xi.Equal(x.End()) && !yi.Equal(y.End()) {
		sum := mustValue(xi) + mustValue(yi) + carry
		z.PushFront(sum % 10)
		carry = sum / 10
		xi, yi = mustPrev(xi), mustPrev(yi)
	}
	for !xi.Equal(x.End()) {
		sum := mustValue(xi) + carry
		z.PushFront(sum % 10)
		carry = sum / 10
		xi = mustPrev(xi)
	}
	for !yi.Equal(y.End()) {
		sum := mustValue(yi) + carry
		z.PushFront(sum % 10)
		carry = sum / 10
		yi = mustPrev(yi)
	}
	if carry > 0 {
		z.PushFront(carry)
	}
	return z
}

// subMag returns the magnitude difference large - small with borrow
// propagation, normalized to carry no leading zeros.
// The magnitude of large must not be less than the magnitude of small.
func subMag(large, small *deque.Deque[digit]) *deque.Deque[digit] {
	z := &deque.Deque[digit]{}
	borrow := 0
	li, si := large.Last(), small.Last()
	for !li.Equal(large.End()) && !si.Equal(small.End()) {
		diff := int(mustValue(li)) - int(mustValue(si)) - borrow
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z.PushFront(digit(diff))
		li, si = mustPrev(li), mustPrev(si)
	}
	for !li.Equal(large.End()) {
		diff := int(mustValue(li)) - borrow
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z.PushFront(digit(diff))
		li = mustPrev(li)
	}
	trimLeadingZeros(z)
	return z
}

// trimLeadingZeros strips superfluous leading zero digits, always leaving
// the ones digit in place.
func trimLeadingZeros(z *deque.Deque[digit]) {
	for z.Len() > 1 {
		f, err := z.Front()
		if err != nil || f != 0 {
			break
		}
		if err := z.PopFront(); err != nil {
			panic(fmt.Sprintf("normalizing magnitude failed: %v", err))
		}
	}
}

// cmpMag compares the magnitudes of x and y, ignoring sign, and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
//
// A longer normalized magnitude is the larger one; magnitudes of equal
// length are decided by the first differing digit from the most
// significant end.
func cmpMag(x, y *deque.Deque[digit]) int {
	switch {
	case x.Len() < y.Len():
		return -1
	case y.Len() < x.Len():
		return 1
	}
	xi, yi := x.Begin(), y.Begin()
	for !xi.Equal(x.End()) && !yi.Equal(y.End()) {
		xv, yv := mustValue(xi), mustValue(yi)
		switch {
		case xv < yv:
			return -1
		case yv < xv:
			return 1
		}
		xi, yi = mustNext(xi), mustNext(yi)
	}
	return 0
}
