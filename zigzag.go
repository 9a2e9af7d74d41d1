package varint

// ZigzagEncode maps a signed value to an unsigned one so that small
// magnitudes of either sign stay numerically small: 0→0, -1→1, 1→2, -2→3.
func ZigzagEncode(value int64) uint64 {
	return uint64((value << 1) ^ (value >> 63))
}

// ZigzagDecode inverts ZigzagEncode.
func ZigzagDecode(value uint64) int64 {
	return int64((value >> 1) ^ uint64((int64(value&1)<<63)>>63))
}

// SizeVarint returns the number of bytes the zigzag encoding of value
// occupies.
func SizeVarint[T Signed](value T) int {
	return sizeUvarint(ZigzagEncode(int64(value)))
}

// EncodeVarint zigzag-maps value and writes its canonical encoding into dst,
// returning the number of bytes written. The buffer contract is the same as
// EncodeUvarint's: dst shorter than SizeVarint(value) panics.
func EncodeVarint[T Signed](value T, dst []byte) int {
	return encodeUvarint(ZigzagEncode(int64(value)), dst)
}

// DecodeVarint reads a single zigzag varint from the start of data and
// returns the value and the number of bytes consumed. Decode failures from
// the unsigned layer propagate unchanged; a decoded value outside T's range
// returns ErrOverflow.
func DecodeVarint[T Signed](data []byte) (T, int, error) {
	encoded, consumed, err := decodeUvarint(data)
	if err != nil {
		return 0, 0, err
	}
	value := ZigzagDecode(encoded)
	if int64(T(value)) != value {
		return 0, 0, ErrOverflow
	}
	return T(value), consumed, nil
}

// AppendVarint appends the zigzag encoding of value to buf and returns the
// extended buffer.
func AppendVarint[T Signed](buf []byte, value T) []byte {
	return AppendUvarint(buf, ZigzagEncode(int64(value)))
}
