package bigint_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/bigi-ecc/bigint"
)

func TestFromHexRoundTrip(t *testing.T) {
	e, err := bigint.FromHex("0x4D2")
	require.NoError(t, err)
	assert.Equal(t, "0x4D2", e.Hex())
}

func TestFromHexRejectsMissingPrefix(t *testing.T) {
	_, err := bigint.FromHex("4D2")
	assert.Error(t, err)
}

func TestBytesLERoundTrip(t *testing.T) {
	e := bigint.FromUint64(0x0102)
	b := e.BytesLE(4)
	assert.True(t, bytes.Equal(b, []byte{0x02, 0x01, 0x00, 0x00}))

	back := bigint.FromBytesLE(b)
	assert.True(t, e.Equal(back))
}

func TestModularArithmetic(t *testing.T) {
	m := bigint.FromUint64(97)
	a := bigint.FromUint64(80)
	b := bigint.FromUint64(30)

	assert.True(t, bigint.AddMod(a, b, m).Equal(bigint.FromUint64(13)))
	assert.True(t, bigint.SubMod(b, a, m).Equal(bigint.FromUint64(47)))
	assert.True(t, bigint.MulMod(a, b, m).Equal(bigint.FromUint64(72)))

	inv := bigint.InvMod(a, m)
	assert.True(t, bigint.MulMod(a, inv, m).Equal(bigint.FromUint64(1)))

	div := bigint.DivMod(a, b, m)
	assert.True(t, bigint.MulMod(div, b, m).Equal(a))
}

func TestSqrtMod(t *testing.T) {
	m := bigint.FromUint64(97)
	four := bigint.FromUint64(4)

	y0, y1, err := bigint.SqrtMod(four, m)
	require.NoError(t, err)
	assert.True(t, bigint.MulMod(y0, y0, m).Equal(four))
	assert.True(t, bigint.MulMod(y1, y1, m).Equal(four))
	assert.True(t, bigint.AddMod(y0, y1, m).IsZero())

	// 5 fails the Euler criterion mod 97, so it has no square root.
	_, _, err = bigint.SqrtMod(bigint.FromUint64(5), m)
	assert.ErrorIs(t, err, bigint.ErrNonResidue)
}

func TestLsh(t *testing.T) {
	e := bigint.FromUint64(1)
	shifted := e.Lsh(1)
	assert.True(t, shifted.Equal(bigint.FromUint64(256)))
}

func TestRandomBounded(t *testing.T) {
	for i := 0; i < 50; i++ {
		e, err := bigint.Random(10, nil)
		require.NoError(t, err)
		assert.True(t, e.BitLen() <= 10)
	}
}
