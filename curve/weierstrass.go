package curve

import "github.com/sammyne/bigi-ecc/bigint"

// Weierstrass is the short Weierstrass curve y^2 = x^3 + A*x + B over a
// prime field of characteristic M.
type Weierstrass struct {
	A bigint.Elem
	B bigint.Elem
	M bigint.Elem
}

var _ Curve = Weierstrass{}

func (c Weierstrass) left(y bigint.Elem) bigint.Elem {
	return bigint.MulMod(y, y, c.M)
}

func (c Weierstrass) right(x bigint.Elem) bigint.Elem {
	inner := bigint.AddMod(bigint.MulMod(x, x, c.M), c.A, c.M)
	return bigint.AddMod(bigint.MulMod(inner, x, c.M), c.B, c.M)
}

// Identity returns the point at infinity.
func (c Weierstrass) Identity() Point {
	return Identity()
}

// Modulus returns the field modulus.
func (c Weierstrass) Modulus() bigint.Elem {
	return c.M
}

// Contains reports whether p satisfies y^2 = x^3 + A*x + B.
func (c Weierstrass) Contains(p Point) bool {
	if p.Infinity {
		return true
	}
	return c.left(p.Y).Equal(c.right(p.X))
}

// FindY returns the two roots of y^2 = x^3 + A*x + B for the given x, or
// ErrNonResidue if x is not the abscissa of any point on the curve.
func (c Weierstrass) FindY(x bigint.Elem) (bigint.Elem, bigint.Elem, error) {
	return bigint.SqrtMod(c.right(x), c.M)
}

// Inv returns the additive inverse of p.
func (c Weierstrass) Inv(p Point) Point {
	if p.Infinity {
		return p
	}
	return Affine(p.X, bigint.SubMod(bigint.Zero, p.Y, c.M))
}

// Add implements the chord-and-tangent group law.
func (c Weierstrass) Add(p, q Point) Point {
	if q.Infinity {
		return p
	}
	if p.Infinity {
		return q
	}
	if p.X.Equal(q.X) && (!p.Y.Equal(q.Y) || p.Y.IsZero()) {
		return Identity()
	}

	var alpha bigint.Elem
	if p.X.Equal(q.X) {
		// alpha = (3x^2 + A) / (2y)
		num := bigint.AddMod(bigint.MulMod(bigint.MulMod(p.X, p.X, c.M), bigint.FromUint64(3), c.M), c.A, c.M)
		den := bigint.MulMod(p.Y, bigint.FromUint64(2), c.M)
		alpha = bigint.DivMod(num, den, c.M)
	} else {
		// alpha = (Py - Qy) / (Px - Qx)
		alpha = bigint.DivMod(bigint.SubMod(p.Y, q.Y, c.M), bigint.SubMod(p.X, q.X, c.M), c.M)
	}

	// Rx := alpha^2 - (Px + Qx)
	x := bigint.SubMod(bigint.MulMod(alpha, alpha, c.M), bigint.AddMod(p.X, q.X, c.M), c.M)
	// Ry := (Qx - Rx) * alpha - Qy
	y := bigint.SubMod(bigint.MulMod(bigint.SubMod(q.X, x, c.M), alpha, c.M), q.Y, c.M)

	return Affine(x, y)
}
