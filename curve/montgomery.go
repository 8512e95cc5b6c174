package curve

import "github.com/sammyne/bigi-ecc/bigint"

// Montgomery is the Montgomery curve B*y^2 = x^3 + A*x^2 + x over a prime
// field of characteristic M.
type Montgomery struct {
	A bigint.Elem
	B bigint.Elem
	M bigint.Elem
}

var _ Curve = Montgomery{}

func (c Montgomery) left(y bigint.Elem) bigint.Elem {
	return bigint.MulMod(bigint.MulMod(y, y, c.M), c.B, c.M)
}

func (c Montgomery) right(x bigint.Elem) bigint.Elem {
	inner := bigint.AddMod(bigint.MulMod(bigint.AddMod(x, c.A, c.M), x, c.M), bigint.One, c.M)
	return bigint.MulMod(inner, x, c.M)
}

// Identity returns the point at infinity.
func (c Montgomery) Identity() Point {
	return Identity()
}

// Modulus returns the field modulus.
func (c Montgomery) Modulus() bigint.Elem {
	return c.M
}

// Contains reports whether p satisfies B*y^2 = x^3 + A*x^2 + x.
func (c Montgomery) Contains(p Point) bool {
	if p.Infinity {
		return true
	}
	return c.left(p.Y).Equal(c.right(p.X))
}

// FindY returns the two roots of B*y^2 = x^3 + A*x^2 + x for the given x, or
// ErrNonResidue if none exist.
func (c Montgomery) FindY(x bigint.Elem) (bigint.Elem, bigint.Elem, error) {
	y2 := bigint.DivMod(c.right(x), c.B, c.M)
	return bigint.SqrtMod(y2, c.M)
}

// Inv returns the additive inverse of p.
func (c Montgomery) Inv(p Point) Point {
	if p.Infinity {
		return p
	}
	return Affine(p.X, bigint.SubMod(bigint.Zero, p.Y, c.M))
}

// Add implements the chord-and-tangent group law.
func (c Montgomery) Add(p, q Point) Point {
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
		// alpha = ((3x + 2A) x + 1) / (2 B y)
		threeX := bigint.MulMod(p.X, bigint.FromUint64(3), c.M)
		twoA := bigint.MulMod(c.A, bigint.FromUint64(2), c.M)
		num := bigint.AddMod(bigint.MulMod(bigint.AddMod(threeX, twoA, c.M), p.X, c.M), bigint.One, c.M)
		den := bigint.MulMod(bigint.MulMod(p.Y, bigint.FromUint64(2), c.M), c.B, c.M)
		alpha = bigint.DivMod(num, den, c.M)
	} else {
		// alpha = (Py - Qy) / (Px - Qx)
		alpha = bigint.DivMod(bigint.SubMod(p.Y, q.Y, c.M), bigint.SubMod(p.X, q.X, c.M), c.M)
	}

	// Rx := B*alpha^2 - (Px + Qx + A)
	bAlpha2 := bigint.MulMod(bigint.MulMod(alpha, alpha, c.M), c.B, c.M)
	sum := bigint.AddMod(bigint.AddMod(p.X, q.X, c.M), c.A, c.M)
	x := bigint.SubMod(bAlpha2, sum, c.M)
	// Ry := (Qx - Rx) * alpha - Qy
	y := bigint.SubMod(bigint.MulMod(bigint.SubMod(q.X, x, c.M), alpha, c.M), q.Y, c.M)

	return Affine(x, y)
}
