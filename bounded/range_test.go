package bounded

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromString(t *testing.T, s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "invalid big integer literal: %s", s)
	return v
}

func TestUnsignedRange(t *testing.T) {
	tests := []struct {
		bits uint
		hi   string
	}{
		{8, "255"},
		{16, "65535"},
		{32, "4294967295"},
		{64, "18446744073709551615"},
	}

	for _, test := range tests {
		r := UnsignedRange(test.bits)
		assert.Zero(t, r.Lo.Sign(), "Expected a zero lower bound for %d bits", test.bits)
		assert.Equal(t, bigFromString(t, test.hi), r.Hi, "Upper bound does not match for %d bits", test.bits)
		assert.NoError(t, r.Validate())
	}
}

func TestSignedRange(t *testing.T) {
	tests := []struct {
		bits uint
		lo   string
		hi   string
	}{
		// The bounds are asymmetric: the width is 2^bits-1, not 2^bits.
		{8, "-127", "128"},
		{16, "-32767", "32768"},
		{32, "-2147483647", "2147483648"},
		{64, "-9223372036854775807", "9223372036854775808"},
	}

	for _, test := range tests {
		r := SignedRange(test.bits)
		assert.Equal(t, bigFromString(t, test.lo), r.Lo, "Lower bound does not match for %d bits", test.bits)
		assert.Equal(t, bigFromString(t, test.hi), r.Hi, "Upper bound does not match for %d bits", test.bits)
		assert.NoError(t, r.Validate())
	}
}

func TestRangeWidth(t *testing.T) {
	assert.Equal(t, big.NewInt(255), UnsignedRange(8).Width())
	assert.Equal(t, big.NewInt(255), SignedRange(8).Width())
	assert.Equal(t, bigFromString(t, "18446744073709551615"), SignedRange(64).Width())
}

func TestRangeValidate(t *testing.T) {
	assert.Error(t, Range{}.Validate())
	assert.Error(t, Range{Lo: big.NewInt(0)}.Validate())
	assert.Error(t, Range{Lo: big.NewInt(5), Hi: big.NewInt(5)}.Validate())
	assert.Error(t, Range{Lo: big.NewInt(5), Hi: big.NewInt(4)}.Validate())
	assert.Error(t, UnsignedRange(0).Validate())
	assert.NoError(t, Range{Lo: big.NewInt(-1), Hi: big.NewInt(1)}.Validate())
}

func TestRangeContains(t *testing.T) {
	r := SignedRange(8)
	assert.True(t, r.Contains(big.NewInt(-127)))
	assert.True(t, r.Contains(big.NewInt(0)))
	assert.True(t, r.Contains(big.NewInt(128)))
	assert.False(t, r.Contains(big.NewInt(-128)))
	assert.False(t, r.Contains(big.NewInt(129)))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[0, 255]", UnsignedRange(8).String())
	assert.Equal(t, "[-127, 128]", SignedRange(8).String())
}
