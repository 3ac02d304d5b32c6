// This file implements encoding and decoding of Ints.

package bigint

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/govalues/bigint/deque"
)

// Binary codec version. Permits backward-compatible changes to the encoding.
const binaryVersion byte = 1

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (z *Int) UnmarshalText(text []byte) error {
	var err error
	*z, err = Parse(string(text))
	return err
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The encoding is a version byte, a sign byte, a big-endian digit count,
// and one byte per magnitude digit, most significant first.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (x Int) MarshalBinary() ([]byte, error) {
	xd := x.digits()
	n, err := safecast.Conv[uint32](xd.Len())
	if err != nil {
		return nil, fmt.Errorf("marshaling %v: %w", x, err)
	}

	buf := make([]byte, 0, 6+xd.Len())
	buf = append(buf, binaryVersion)
	if x.neg {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.BigEndian.AppendUint32(buf, n)
	for it := xd.Begin(); !it.Equal(xd.End()); it = mustNext(it) {
		buf = append(buf, mustValue(it))
	}
	return buf, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The payload must be normalized: at least one digit, no leading zero
// except for the single-digit zero, and a non-negative zero.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (z *Int) UnmarshalBinary(data []byte) error {
	if len(data) < 6 {
		return fmt.Errorf("truncated payload of %d byte(s): %w", len(data), ErrInvalidInteger)
	}
	if data[0] != binaryVersion {
		return fmt.Errorf("encoding version %d not supported", data[0])
	}
	neg := data[1] != 0
	n, err := safecast.Conv[int](binary.BigEndian.Uint32(data[2:]))
	if err != nil {
		return fmt.Errorf("unmarshaling integer: %w", err)
	}
	body := data[6:]
	switch {
	case n == 0:
		return fmt.Errorf("no digits: %w", ErrInvalidInteger)
	case len(body) != n:
		return fmt.Errorf("digit count %d does not match %d payload byte(s): %w", n, len(body), ErrInvalidInteger)
	case n > 1 && body[0] == 0:
		return fmt.Errorf("leading zero digit: %w", ErrInvalidInteger)
	case n == 1 && body[0] == 0 && neg:
		return fmt.Errorf("negative zero: %w", ErrInvalidInteger)
	}

	mag := &deque.Deque[digit]{}
	for _, d := range body {
		if d > 9 {
			return fmt.Errorf("digit %d out of range: %w", d, ErrInvalidInteger)
		}
		mag.PushBack(d)
	}
	*z = Int{neg: neg, mag: mag}
	return nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The integer is encoded as its canonical decimal string.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*z, err = Parse(s)
	return err
}

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)
