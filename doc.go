// Package varint encodes and decodes variable-length integers.
//
// Each encoded byte carries 7 payload bits in its low bits and a continuation
// flag in its high bit; groups are ordered least-significant first, so a
// 64-bit value takes between 1 and 10 bytes. Signed values are zigzag-mapped
// before encoding so that small magnitudes of either sign stay short:
//
//	0   → [0x00]
//	-1  → [0x01]
//	127 → [0x7f]
//	128 → [0x80, 0x01]
//	300 → [0xac, 0x02]
//
// All widths share the two 64-bit base codecs. Encoding a narrow type widens
// it first, and decoding into a narrow type runs the 64-bit decode and then
// rejects values that do not fit, so a byte sequence valid for uint8 decodes
// to the same number as uint16, uint32 or uint64. Decoding never truncates:
// an encoded magnitude outside the target type's range fails with
// ErrOverflow, and input that ends before a terminating byte fails with
// ErrTruncated.
//
// The unsigned wire format is identical to protobuf's varint encoding.
package varint
