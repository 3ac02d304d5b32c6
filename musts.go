package bigint

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	z, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// MustInt64 is like [Int.Int64] but panics if the value is out of range.
func (x Int) MustInt64() int64 {
	n, err := x.Int64()
	if err != nil {
		panic(fmt.Sprintf("%v.MustInt64() failed: %v", x, err))
	}
	return n
}
