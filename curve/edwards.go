package curve

import "github.com/sammyne/bigi-ecc/bigint"

// Edwards is the untwisted Edwards curve x^2 + y^2 = 1 + D*x^2*y^2 over a
// prime field of characteristic M. Unlike Weierstrass and Montgomery, its
// identity is the affine point (0,1) rather than the point at infinity, and
// its addition law is "complete": the same formula handles doubling and the
// generic case alike, with no branch on p == q.
type Edwards struct {
	D bigint.Elem
	M bigint.Elem
}

var _ Curve = Edwards{}

// Identity returns the affine identity (0,1).
func (c Edwards) Identity() Point {
	return Affine(bigint.Zero, bigint.One)
}

// Modulus returns the field modulus.
func (c Edwards) Modulus() bigint.Elem {
	return c.M
}

// Contains reports whether p satisfies x^2 + y^2 = 1 + D*x^2*y^2.
func (c Edwards) Contains(p Point) bool {
	if p.Infinity {
		return true
	}
	x2 := bigint.MulMod(p.X, p.X, c.M)
	y2 := bigint.MulMod(p.Y, p.Y, c.M)
	left := bigint.AddMod(x2, y2, c.M)
	right := bigint.AddMod(bigint.MulMod(bigint.MulMod(x2, y2, c.M), c.D, c.M), bigint.One, c.M)
	return left.Equal(right)
}

// FindY returns the two roots of x^2 + y^2 = 1 + D*x^2*y^2 for the given x,
// or ErrNonResidue if none exist.
func (c Edwards) FindY(x bigint.Elem) (bigint.Elem, bigint.Elem, error) {
	x2 := bigint.MulMod(x, x, c.M)
	num := bigint.SubMod(x2, bigint.One, c.M)
	den := bigint.SubMod(bigint.MulMod(x2, c.D, c.M), bigint.One, c.M)
	y2 := bigint.DivMod(num, den, c.M)
	return bigint.SqrtMod(y2, c.M)
}

// Inv returns the additive inverse of p.
func (c Edwards) Inv(p Point) Point {
	if p.Infinity {
		return p
	}
	return Affine(bigint.SubMod(bigint.Zero, p.X, c.M), p.Y)
}

// Add implements the complete (unified) Edwards addition law.
func (c Edwards) Add(p, q Point) Point {
	// t := D * Px * Qx * Py * Qy
	t := bigint.MulMod(bigint.MulMod(p.X, q.X, c.M), bigint.MulMod(p.Y, q.Y, c.M), c.M)
	t = bigint.MulMod(t, c.D, c.M)

	// x := (Px*Qy + Py*Qx) / (1 + t)
	xNum := bigint.AddMod(bigint.MulMod(p.X, q.Y, c.M), bigint.MulMod(q.X, p.Y, c.M), c.M)
	x := bigint.DivMod(xNum, bigint.AddMod(bigint.One, t, c.M), c.M)

	// y := (Py*Qy - Px*Qx) / (1 - t)
	yNum := bigint.SubMod(bigint.MulMod(p.Y, q.Y, c.M), bigint.MulMod(p.X, q.X, c.M), c.M)
	y := bigint.DivMod(yNum, bigint.SubMod(bigint.One, t, c.M), c.M)

	return Affine(x, y)
}
