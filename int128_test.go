package binlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU128RoundTrip(t *testing.T) {
	values := []U128{
		{},
		{Lo: 1},
		{Lo: 0xFFFFFFFFFFFFFFFF},
		{Hi: 1},
		{Hi: 0xDEADBEEFCAFEBABE, Lo: 0x0123456789ABCDEF},
		{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF},
	}

	for _, endian := range []Endianness{LittleEndian, BigEndian} {
		for _, v := range values {
			var buf [16]byte
			putU128(endian, buf[:], v)
			assert.Equal(t, v, getU128(endian, buf[:]), "%v %v", endian, v)
		}
	}
}

func TestI128RoundTrip(t *testing.T) {
	values := []I128{
		{},
		{Lo: 1},
		{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}, // -1
		{Hi: -1, Lo: 0},
		{Hi: 0x7FFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}, // max
		{Hi: -0x8000000000000000, Lo: 0},                 // min
	}

	for _, endian := range []Endianness{LittleEndian, BigEndian} {
		for _, v := range values {
			var buf [16]byte
			putI128(endian, buf[:], v)
			assert.Equal(t, v, getI128(endian, buf[:]), "%v %v", endian, v)
		}
	}
}

func TestU128WireLayout(t *testing.T) {
	v := U128{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10}

	var be [16]byte
	putU128(BigEndian, be[:], v)
	assert.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
	}, be[:])

	var le [16]byte
	putU128(LittleEndian, le[:], v)
	assert.Equal(t, []byte{
		0x10, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, le[:])
}

func TestI128SignExtension(t *testing.T) {
	assert.Equal(t, I128{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}, I128FromInt64(-1))
	assert.Equal(t, I128{Hi: -1, Lo: 0xFFFFFFFFFFFFFF9C}, I128FromInt64(-100))
	assert.Equal(t, I128{Lo: 100}, I128FromInt64(100))
	assert.Equal(t, U128{Lo: 100}, U128FromUint64(100))
}

func TestInt128FieldAccess(t *testing.T) {
	l := mustLayout(t, "wide", BigEndian,
		F("id", Uint128Type),
		F("delta", Int128Type),
	)
	require.Equal(t, 32, l.MinSize())
	buf := make([]byte, 32)

	id, _ := l.FieldByName("id")
	delta, _ := l.FieldByName("delta")

	require.NoError(t, id.PutUint128(buf, U128{Hi: 7, Lo: 9}))
	require.NoError(t, delta.PutInt128(buf, I128FromInt64(-42)))

	u, err := id.Uint128(buf)
	require.NoError(t, err)
	assert.Equal(t, U128{Hi: 7, Lo: 9}, u)

	i, err := delta.Int128(buf)
	require.NoError(t, err)
	assert.Equal(t, I128FromInt64(-42), i)

	// Width mismatch with the 64-bit accessor fails loudly.
	_, err = id.Uint64(buf)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
