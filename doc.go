/*
Package bigint implements immutable arbitrary-precision signed integers.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a doubly-linked sequence of decimal digits provided by
    [github.com/govalues/bigint/deque], most significant digit first.

The magnitude is always normalized: it holds at least one digit, carries
no leading zeros, and every digit is in the range [0, 9]. The value 0 is
represented by the single digit 0 and is never negative. The zero value
of [Int] is the numeric value 0 and is ready to use.

# Operations

Arithmetic follows the schoolbook algorithms: addition and subtraction
walk both magnitudes from the least significant digit with carry or
borrow propagation, and multiplication accumulates shifted partial
products. [Int.Add], [Int.Sub], and [Int.Mul] dispatch on the operand
signs and delegate to a single set of unsigned magnitude kernels, so the
carry and borrow logic exists in exactly one place. Operands are never
mutated; every operation builds a fresh, normalized result.

Division is deliberately not provided.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [Read], [Int.String], [Int.Format].
  - from/to int64:
    [New], [Int.Int64].

[Read] scans the longest valid prefix of a buffered stream: it skips
leading whitespace, consumes a minus sign only when a digit follows it,
discards leading zeros, and stops in front of the first non-digit
character, leaving it unconsumed. [Parse] requires the entire string to
be consumed.

# Errors

All methods are pure and panic-free unless otherwise specified, such as
the Must wrappers. Errors are returned in the following cases:

  - Range.
    [Int.Int64] returns [ErrInt64Range] when the value does not fit
    into an int64.

  - Invalid text.
    [Parse], [Int.UnmarshalText], and [Int.UnmarshalBinary] return
    errors wrapping [ErrInvalidInteger] for malformed input.

Arithmetic operations and comparisons cannot fail: there is no upper
bound on the magnitude other than available memory, and running out of
memory is treated as a fatal condition rather than a reported error.
*/
package bigint
