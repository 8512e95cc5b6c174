package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
)

func TestPointToHex(t *testing.T) {
	p := curve.Affine(bigint.FromUint64(1234), bigint.FromUint64(1255))
	assert.Equal(t, "0x4D2 0x4E7", p.ToHex())
}

func TestPointHexRoundTrip(t *testing.T) {
	p := curve.Affine(bigint.FromUint64(1234), bigint.FromUint64(1255))

	back, err := curve.FromHex(p.ToHex())
	require.NoError(t, err)
	assert.True(t, p.Equal(back))
}

func TestPointFromHexRejectsMalformed(t *testing.T) {
	_, err := curve.FromHex("0x4D2")
	assert.Error(t, err)
}

func TestPointBytesRoundTrip(t *testing.T) {
	p := curve.Affine(bigint.FromUint64(1234), bigint.FromUint64(1255))

	b := p.ToBytes(32)
	assert.Len(t, b, 64)

	back, err := curve.PointFromBytes(b)
	require.NoError(t, err)
	assert.True(t, p.Equal(back))
}

func TestPointEquality(t *testing.T) {
	a := curve.Affine(bigint.FromUint64(1), bigint.FromUint64(2))
	b := curve.Affine(bigint.FromUint64(1), bigint.FromUint64(2))
	c := curve.Affine(bigint.FromUint64(1), bigint.FromUint64(3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, curve.Identity().Equal(curve.Identity()))
	assert.False(t, curve.Identity().Equal(a))
	assert.False(t, a.Equal(curve.Identity()))
}
