// Package schema binds a curve to a generator, the generator's order and
// cofactor: the minimal data needed to use a curve as a cryptographic
// group, independent of which curve family backs it.
package schema

import (
	"io"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
)

// Schema names a curve and fixes its base point.
type Schema struct {
	Title     string
	Curve     curve.Curve
	Order     bigint.Elem
	Cofactor  bigint.Elem
	Generator curve.Point
	// Bits bounds the bit length of scalars drawn by GeneratePair; it is
	// normally close to Order.BitLen().
	Bits int
}

// PointAt returns k*Generator.
func (s Schema) PointAt(k bigint.Elem) curve.Point {
	return curve.Mul(s.Curve, s.Generator, k)
}

// GeneratePair draws a private scalar uniformly from [0, Order) and returns
// it alongside its public point. rng is the entropy source; a nil rng
// defaults to crypto/rand.
func (s Schema) GeneratePair(rng io.Reader) (bigint.Elem, curve.Point, error) {
	raw, err := bigint.Random(s.Bits, rng)
	if err != nil {
		return bigint.Elem{}, curve.Point{}, err
	}
	x := bigint.Mod(raw, s.Order)
	return x, s.PointAt(x), nil
}
