package curve

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sammyne/bigi-ecc/bigint"
)

// Point is an affine point on some curve, or the distinguished group
// identity ("point at infinity"). It is a plain value: freely copyable,
// owning nothing.
type Point struct {
	X        bigint.Elem
	Y        bigint.Elem
	Infinity bool
}

// Identity returns the point-at-infinity marker. Concrete curves may use
// this directly (Weierstrass, Montgomery) or expose their own affine
// identity (Edwards' (0,1)); see each curve's Identity method.
func Identity() Point {
	return Point{Infinity: true}
}

// Affine builds a non-identity point from its coordinates.
func Affine(x, y bigint.Elem) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q are the same group element: two identities
// are always equal, an identity never equals an affine point, and two
// affine points are equal iff their coordinates match componentwise.
func (p Point) Equal(q Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// ToHex renders an affine point as "<hex(x)> <hex(y)>". The identity has no
// distinct hex form in this codec — a known lossy encoding inherited from
// the source this library is modeled on — so callers must not serialize it.
func (p Point) ToHex() string {
	return p.X.Hex() + " " + p.Y.Hex()
}

// FromHex parses the "<hex(x)> <hex(y)>" form produced by ToHex into an
// affine point. It never produces the identity.
func FromHex(s string) (Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Point{}, errors.Errorf("curve: expected 2 hex fields, got %d", len(fields))
	}
	x, err := bigint.FromHex(fields[0])
	if err != nil {
		return Point{}, errors.Wrap(err, "curve: decoding x")
	}
	y, err := bigint.FromHex(fields[1])
	if err != nil {
		return Point{}, errors.Wrap(err, "curve: decoding y")
	}
	return Affine(x, y), nil
}

// ToBytes concatenates the fixed-width little-endian encoding of x followed
// by that of y, each coordWidth bytes wide. Like ToHex, this codec cannot
// represent the identity.
func (p Point) ToBytes(coordWidth int) []byte {
	out := make([]byte, 0, 2*coordWidth)
	out = append(out, p.X.BytesLE(coordWidth)...)
	out = append(out, p.Y.BytesLE(coordWidth)...)
	return out
}

// PointFromBytes splits b into two equal halves and decodes each as a
// little-endian coordinate.
func PointFromBytes(b []byte) (Point, error) {
	if len(b)%2 != 0 {
		return Point{}, errors.Errorf("curve: odd-length point encoding (%d bytes)", len(b))
	}
	half := len(b) / 2
	x := bigint.FromBytesLE(b[:half])
	y := bigint.FromBytesLE(b[half:])
	return Affine(x, y), nil
}
