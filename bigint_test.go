package bigint

import (
	"errors"
	"math"
	"testing"
)

func TestInt_ZeroValue(t *testing.T) {
	var x Int
	if got := x.String(); got != "0" {
		t.Errorf("Int{}.String() = %q, want %q", got, "0")
	}
	if !x.IsZero() {
		t.Errorf("Int{}.IsZero() = false, want true")
	}
	if x.IsNeg() {
		t.Errorf("Int{}.IsNeg() = true, want false")
	}
	if got := x.NumDigits(); got != 1 {
		t.Errorf("Int{}.NumDigits() = %v, want 1", got)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{9, "9"},
		{10, "10"},
		{-10, "-10"},
		{123, "123"},
		{-456, "-456"},
		{1000000, "1000000"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
		{math.MinInt64 + 1, "-9223372036854775807"},
	}
	for _, tt := range tests {
		if got := New(tt.n).String(); got != tt.want {
			t.Errorf("New(%v).String() = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestInt_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int64{
			0, 1, -1, 7, -7, 10, 42, -42, 123456789,
			math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1,
		}
		for _, n := range tests {
			got, err := New(n).Int64()
			if err != nil {
				t.Errorf("New(%v).Int64() failed: %v", n, err)
				continue
			}
			if got != n {
				t.Errorf("New(%v).Int64() = %v, want %v", n, got, n)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"above max": "9223372036854775808",
			"below min": "-9223372036854775809",
			"huge":      "123456789012345678901234567890",
			"huge neg":  "-123456789012345678901234567890",
		}
		for name, s := range tests {
			x := MustParse(s)
			if _, err := x.Int64(); !errors.Is(err, ErrInt64Range) {
				t.Errorf("%s: %q.Int64() error = %v, want %v", name, s, err, ErrInt64Range)
			}
		}
	})

	t.Run("conversion does not affect the value", func(t *testing.T) {
		x := MustParse("99999999999999999999")
		_, _ = x.Int64()
		if got, want := x.String(), "99999999999999999999"; got != want {
			t.Errorf("value after Int64() = %q, want %q", got, want)
		}
	})
}

func TestInt_NumDigits(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 1},
		{"7", 1},
		{"-7", 1},
		{"10", 2},
		{"-456", 3},
		{"9223372036854775808", 19},
	}
	for _, tt := range tests {
		if got := MustParse(tt.x).NumDigits(); got != tt.want {
			t.Errorf("%q.NumDigits() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInt_Add(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"1", "1", "2"},
		{"2", "3", "5"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"-5", "-3", "-8"},
		{"-5", "5", "0"},
		{"5", "-5", "0"},
		{"0", "0", "0"},
		{"0", "-7", "-7"},
		{"9", "1", "10"},
		{"99", "1", "100"},
		{"999", "999", "1998"},
		{"999999999999999999999", "1", "1000000000000000000000"},
		{"1", "999999999999999999999", "1000000000000000000000"},
		{"123456789", "987654321", "1111111110"},
		{"-100", "99", "-1"},
		{"-99", "100", "1"},
		{"9223372036854775807", "9223372036854775807", "18446744073709551614"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.Add(y).String(); got != tt.want {
			t.Errorf("%q.Add(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Sub(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		// Signs
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-5", "-3", "-2"},
		{"-3", "-5", "2"},
		{"-5", "3", "-8"},
		{"-3", "5", "-8"},
		{"5", "-3", "8"},
		{"3", "-5", "8"},
		// Zero results keep a non-negative sign
		{"5", "5", "0"},
		{"-5", "-5", "0"},
		{"0", "0", "0"},
		// Borrow propagation and normalization
		{"1000", "999", "1"},
		{"1000", "1", "999"},
		{"10000000000000000000", "1", "9999999999999999999"},
		{"100", "-99", "199"},
		{"0", "7", "-7"},
		{"0", "-7", "7"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.Sub(y).String(); got != tt.want {
			t.Errorf("%q.Sub(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Mul(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "123", "0"},
		{"123", "0", "0"},
		{"0", "-123", "0"},
		{"1", "123", "123"},
		{"-1", "123", "-123"},
		{"123", "456", "56088"},
		{"-123", "456", "-56088"},
		{"123", "-456", "-56088"},
		{"-123", "-456", "56088"},
		{"9", "9", "81"},
		{"10", "10", "100"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
		{"37", "100000000000000000000", "3700000000000000000000"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.Mul(y).String(); got != tt.want {
			t.Errorf("%q.Mul(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Properties(t *testing.T) {
	samples := []string{
		"0", "1", "-1", "7", "-7", "10", "-10", "99", "-99",
		"123", "-456", "1000", "9999999999999999999",
		"-9999999999999999999", "123456789012345678901234567890",
	}
	zero := New(0)
	one := New(1)

	for _, sa := range samples {
		a := MustParse(sa)

		if got := a.Mul(zero); !got.Equal(zero) {
			t.Errorf("%q * 0 = %q, want 0", sa, got)
		}
		if got := a.Mul(one); !got.Equal(a) {
			t.Errorf("%q * 1 = %q, want %q", sa, got, sa)
		}

		for _, sb := range samples {
			b := MustParse(sb)

			if got, want := a.Add(b), b.Add(a); !got.Equal(want) {
				t.Errorf("%q + %q = %q, but %q + %q = %q", sa, sb, got, sb, sa, want)
			}
			if got := a.Add(b).Sub(b); !got.Equal(a) {
				t.Errorf("%q + %q - %q = %q, want %q", sa, sb, sb, got, sa)
			}
			if got, want := a.Mul(b), b.Mul(a); !got.Equal(want) {
				t.Errorf("%q * %q = %q, but %q * %q = %q", sa, sb, got, sb, sa, want)
			}
		}
	}
}

func TestInt_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"0", "-1", 1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"5", "5", 0},
		{"-5", "-5", 0},
		{"10", "9", 1},
		{"9", "10", -1},
		// More digits means smaller for negative operands
		{"-10", "-9", -1},
		{"-9", "-10", 1},
		{"123", "124", -1},
		{"-123", "-124", 1},
		{"9999999999999999999", "9999999999999999998", 1},
		{"-9999999999999999999", "-9999999999999999998", -1},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.Cmp(y); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Trichotomy(t *testing.T) {
	samples := []string{
		"0", "1", "-1", "9", "-9", "10", "-10", "123", "-123",
		"124", "999", "1000", "-1000", "123456789012345678901234567890",
		"-123456789012345678901234567890",
	}
	for _, sa := range samples {
		for _, sb := range samples {
			a := MustParse(sa)
			b := MustParse(sb)
			holds := 0
			if a.Less(b) {
				holds++
			}
			if a.Equal(b) {
				holds++
			}
			if b.Less(a) {
				holds++
			}
			if holds != 1 {
				t.Errorf("trichotomy violated for %q and %q: %v relations hold", sa, sb, holds)
			}
		}
	}
}

func TestInt_SignPredicates(t *testing.T) {
	tests := []struct {
		x      string
		sign   int
		isPos  bool
		isNeg  bool
		isZero bool
	}{
		{"0", 0, false, false, true},
		{"7", 1, true, false, false},
		{"-7", -1, false, true, false},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		if got := x.Sign(); got != tt.sign {
			t.Errorf("%q.Sign() = %v, want %v", tt.x, got, tt.sign)
		}
		if got := x.IsPos(); got != tt.isPos {
			t.Errorf("%q.IsPos() = %v, want %v", tt.x, got, tt.isPos)
		}
		if got := x.IsNeg(); got != tt.isNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", tt.x, got, tt.isNeg)
		}
		if got := x.IsZero(); got != tt.isZero {
			t.Errorf("%q.IsZero() = %v, want %v", tt.x, got, tt.isZero)
		}
	}
}

func TestInt_Neg(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"7", "-7"},
		{"-7", "7"},
		{"123456789012345678901234567890", "-123456789012345678901234567890"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.x).Neg().String(); got != tt.want {
			t.Errorf("%q.Neg() = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestInt_Abs(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"7", "7"},
		{"-7", "7"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.x).Abs().String(); got != tt.want {
			t.Errorf("%q.Abs() = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestInt_CopySign(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"7", "-1", "-7"},
		{"-7", "1", "7"},
		{"7", "1", "7"},
		{"-7", "-1", "-7"},
		{"7", "0", "7"},
		{"-7", "0", "-7"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.CopySign(y).String(); got != tt.want {
			t.Errorf("%q.CopySign(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_MaxMin(t *testing.T) {
	tests := []struct {
		x, y, wantMax, wantMin string
	}{
		{"3", "5", "5", "3"},
		{"-3", "-5", "-3", "-5"},
		{"-3", "3", "3", "-3"},
		{"7", "7", "7", "7"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		y := MustParse(tt.y)
		if got := x.Max(y).String(); got != tt.wantMax {
			t.Errorf("%q.Max(%q) = %q, want %q", tt.x, tt.y, got, tt.wantMax)
		}
		if got := x.Min(y).String(); got != tt.wantMin {
			t.Errorf("%q.Min(%q) = %q, want %q", tt.x, tt.y, got, tt.wantMin)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("-42").String(); got != "-42" {
		t.Errorf("MustParse(%q) = %q, want %q", "-42", got, "-42")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(\".\") did not panic")
		}
	}()
	MustParse(".")
}

func TestInt_MustInt64(t *testing.T) {
	if got := New(-42).MustInt64(); got != -42 {
		t.Errorf("New(-42).MustInt64() = %v, want -42", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustInt64() did not panic for an out-of-range value")
		}
	}()
	MustParse("9223372036854775808").MustInt64()
}

func TestInt_OperandsNotMutated(t *testing.T) {
	x := MustParse("999")
	y := MustParse("-999")
	_ = x.Add(y)
	_ = x.Sub(y)
	_ = x.Mul(y)
	_ = x.Cmp(y)
	if got := x.String(); got != "999" {
		t.Errorf("left operand after arithmetic = %q, want %q", got, "999")
	}
	if got := y.String(); got != "-999" {
		t.Errorf("right operand after arithmetic = %q, want %q", got, "-999")
	}
}
