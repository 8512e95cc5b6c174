package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
)

func toyWeierstrass() curve.Weierstrass {
	return curve.Weierstrass{
		A: bigint.FromUint64(2),
		B: bigint.FromUint64(3),
		M: bigint.FromUint64(97),
	}
}

func pt(x, y uint64) curve.Point {
	return curve.Affine(bigint.FromUint64(x), bigint.FromUint64(y))
}

func TestWeierstrassContains(t *testing.T) {
	c := toyWeierstrass()

	assert.True(t, c.Contains(pt(80, 87)))
	assert.False(t, c.Contains(pt(0, 0)))
	assert.True(t, c.Contains(curve.Identity()))
	assert.False(t, c.Contains(pt(80, 86)))
	assert.True(t, c.Contains(pt(30, 0)))
}

func TestWeierstrassAdd(t *testing.T) {
	c := toyWeierstrass()

	assert.True(t, c.Add(pt(3, 6), pt(80, 10)).Equal(pt(80, 87)))
	assert.True(t, c.Add(pt(3, 6), curve.Identity()).Equal(pt(3, 6)))
	assert.True(t, c.Add(curve.Identity(), pt(3, 6)).Equal(pt(3, 6)))
	assert.True(t, c.Add(curve.Identity(), curve.Identity()).Equal(curve.Identity()))
	assert.True(t, c.Add(pt(3, 6), pt(3, 91)).Equal(curve.Identity()))
	assert.True(t, c.Add(pt(30, 0), pt(68, 0)).Equal(pt(96, 0)))
}

func TestWeierstrassDouble(t *testing.T) {
	c := toyWeierstrass()

	assert.True(t, curve.Double(c, pt(3, 6)).Equal(pt(80, 10)))
	assert.True(t, curve.Double(c, curve.Identity()).Equal(curve.Identity()))
	assert.True(t, curve.Double(c, pt(30, 0)).Equal(curve.Identity()))
}

func TestWeierstrassMul(t *testing.T) {
	c := toyWeierstrass()
	p := pt(3, 6)

	assert.True(t, curve.Mul(c, p, bigint.FromUint64(0)).Equal(curve.Identity()))
	assert.True(t, curve.Mul(c, p, bigint.FromUint64(1)).Equal(pt(3, 6)))
	assert.True(t, curve.Mul(c, p, bigint.FromUint64(2)).Equal(pt(80, 10)))
	assert.True(t, curve.Mul(c, p, bigint.FromUint64(3)).Equal(pt(80, 87)))
	assert.True(t, curve.Mul(c, p, bigint.FromUint64(4)).Equal(pt(3, 91)))
	assert.True(t, curve.Mul(c, p, bigint.FromUint64(5)).Equal(curve.Identity()))
}
