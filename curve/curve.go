package curve

import "github.com/sammyne/bigi-ecc/bigint"

// Curve is the capability every curve family implements: membership
// checking and the group law, expressed purely in affine coordinates.
// Doubling and scalar multiplication are not part of the interface — they
// are provided once, generically, below, since point doubling is just
// self-addition and double-and-add over Add is identical across families.
type Curve interface {
	// Contains reports whether p lies on the curve (the identity always
	// does).
	Contains(p Point) bool

	// Add returns p+q.
	Add(p, q Point) Point

	// Inv returns the additive inverse of p.
	Inv(p Point) Point

	// Identity returns this curve's additive identity.
	Identity() Point

	// Modulus returns the prime field modulus this curve is defined over.
	Modulus() bigint.Elem
}

// YFinder is implemented by curve families that can recover a point's y
// coordinate given its x coordinate: every family in this module
// (Weierstrass, Montgomery, Edwards). The Mapper relies on it to turn a
// candidate x value into a usable point.
type YFinder interface {
	// FindY returns the two roots of the curve equation at x, or
	// bigint.ErrNonResidue if x is not the abscissa of any point.
	FindY(x bigint.Elem) (bigint.Elem, bigint.Elem, error)
}

// Double returns p+p.
func Double(c Curve, p Point) Point {
	return c.Add(p, p)
}

// Mul computes k*p via bit-serial double-and-add, iterating exactly to
// k's true bit length rather than some fixed word count. A zero scalar, or
// an identity p, yields the curve's identity.
func Mul(c Curve, p Point, k bigint.Elem) Point {
	result := c.Identity()
	addend := p

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		addend = Double(c, addend)
	}

	return result
}
