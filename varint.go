package varint

import (
	"errors"
	"math/bits"
)

// MaxLen64 is the maximum number of bytes a varint-encoded 64-bit value
// occupies: nine full 7-bit groups plus a tenth byte carrying the last bit.
const MaxLen64 = 10

var (
	ErrOverflow  = errors.New("varint: value overflows target width")
	ErrTruncated = errors.New("varint: truncated input")
)

type (
	Unsigned interface {
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
	}
	Signed interface {
		~int8 | ~int16 | ~int32 | ~int64 | ~int
	}
)

// SizeUvarint returns the number of bytes the canonical encoding of value
// occupies. A value of zero still takes one byte.
func SizeUvarint[T Unsigned](value T) int {
	return sizeUvarint(uint64(value))
}

// EncodeUvarint writes the canonical encoding of value into dst and returns
// the number of bytes written, which always equals SizeUvarint(value).
// dst must be at least SizeUvarint(value) bytes long; a shorter buffer is a
// caller bug and panics rather than writing out of bounds.
func EncodeUvarint[T Unsigned](value T, dst []byte) int {
	return encodeUvarint(uint64(value), dst)
}

// DecodeUvarint reads a single varint from the start of data and returns the
// value and the number of bytes consumed. It returns ErrTruncated when data
// ends before a terminating byte and ErrOverflow when the encoded magnitude
// does not fit in T. Bytes past the terminating byte are never read.
func DecodeUvarint[T Unsigned](data []byte) (T, int, error) {
	value, consumed, err := decodeUvarint(data)
	if err != nil {
		return 0, 0, err
	}
	if uint64(T(value)) != value {
		return 0, 0, ErrOverflow
	}
	return T(value), consumed, nil
}

// AppendUvarint appends the canonical encoding of value to buf and returns
// the extended buffer.
func AppendUvarint[T Unsigned](buf []byte, value T) []byte {
	v := uint64(value)
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func sizeUvarint(value uint64) int {
	return max(1, (bits.Len64(value)+6)/7)
}

func encodeUvarint(value uint64, dst []byte) int {
	if len(dst) < sizeUvarint(value) {
		panic("varint: encode buffer too small")
	}
	i := 0
	for value >= 0x80 {
		dst[i] = byte(value) | 0x80
		value >>= 7
		i++
	}
	dst[i] = byte(value)
	return i + 1
}

func decodeUvarint(data []byte) (uint64, int, error) {
	var result uint64
	var shift uint

	for i, b := range data {
		// The tenth group sits at shift 63 and holds a single usable bit;
		// anything above 1 there would not fit in 64 bits.
		if shift == 63 && b > 1 {
			return 0, 0, ErrOverflow
		}
		result |= uint64(b&0x7f) << shift

		if b&0x80 == 0 {
			return result, i + 1, nil
		}

		shift += 7
	}
	return 0, 0, ErrTruncated
}
