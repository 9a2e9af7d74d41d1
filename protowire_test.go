package varint_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vedadiyan/varint"
)

// The unsigned wire format must be bit-identical to protobuf varints.

func crossCheckValues() []uint64 {
	values := []uint64{
		0, 1, 2, 127, 128, 300, 16383, 16384,
		1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28,
		math.MaxUint32, math.MaxUint32 + 1,
		1 << 63, math.MaxUint64 - 1, math.MaxUint64,
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 256; i++ {
		values = append(values, r.Uint64()>>(r.Intn(64)))
	}
	return values
}

func TestUvarintMatchesProtowire(t *testing.T) {
	for _, v := range crossCheckValues() {
		theirs := protowire.AppendVarint(nil, v)
		ours := varint.AppendUvarint(nil, v)
		require.Equal(t, theirs, ours, "value %d", v)
		require.Equal(t, protowire.SizeVarint(v), varint.SizeUvarint(v), "value %d", v)

		got, n := protowire.ConsumeVarint(ours)
		require.Greater(t, n, 0)
		require.Equal(t, v, got)

		ourGot, ourN, err := varint.DecodeUvarint[uint64](theirs)
		require.NoError(t, err)
		require.Equal(t, v, ourGot)
		require.Equal(t, len(theirs), ourN)
	}
}

func TestZigzagMatchesProtowire(t *testing.T) {
	signed := []int64{
		math.MinInt64, math.MinInt64 + 1, math.MinInt32, -300, -2, -1,
		0, 1, 2, 300, math.MaxInt32, math.MaxInt64 - 1, math.MaxInt64,
	}
	for _, v := range signed {
		require.Equal(t, protowire.EncodeZigZag(v), varint.ZigzagEncode(v), "value %d", v)
		require.Equal(t, v, varint.ZigzagDecode(protowire.EncodeZigZag(v)), "value %d", v)
	}
	for _, u := range crossCheckValues() {
		require.Equal(t, protowire.DecodeZigZag(u), varint.ZigzagDecode(u), "value %d", u)
	}
}

func TestProtowireRejectsSameOverflow(t *testing.T) {
	over := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}

	_, n := protowire.ConsumeVarint(over)
	require.Negative(t, n)

	_, _, err := varint.DecodeUvarint[uint64](over)
	require.ErrorIs(t, err, varint.ErrOverflow)
}
