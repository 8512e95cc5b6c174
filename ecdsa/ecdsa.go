// Package ecdsa implements the ECDSA signature scheme over the curves in
// this module. It has no hash dependency of its own: callers supply an
// already-computed digest, half a coordinate wide, which Sign and Verify
// zero-pad back up to a full coordinate before reducing it modulo the
// group order.
package ecdsa

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
	"github.com/sammyne/bigi-ecc/schema"
)

// ErrHashLength is returned when the digest passed to Sign or Verify is not
// exactly half a coordinate wide.
var ErrHashLength = errors.New("ecdsa: hash must be half the curve's coordinate width")

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R bigint.Elem
	S bigint.Elem
}

// coordWidth is the full byte width of an x coordinate for the schema's
// curve.
func coordWidth(s schema.Schema) int {
	return (s.Bits + 7) / 8
}

// prepareHash validates the precondition that hash is half a coordinate
// wide, then zero-pads it on the right to a full coordinate and reduces it
// modulo the group order.
func prepareHash(s schema.Schema, hash []byte) (bigint.Elem, error) {
	width := coordWidth(s)
	if len(hash) != width/2 {
		return bigint.Elem{}, errors.Wrapf(ErrHashLength, "got %d bytes, want %d", len(hash), width/2)
	}

	padded := make([]byte, width)
	copy(padded, hash)

	h := bigint.FromBytesLE(padded)
	return bigint.Mod(h, s.Order), nil
}

// Sign produces an ECDSA signature over hash using the private key d,
// drawing a fresh ephemeral nonce per attempt (retrying if r lands on
// zero). The nonce MUST be uniformly fresh per signature — reuse or bias
// leaks d.
func Sign(rng io.Reader, s schema.Schema, d bigint.Elem, hash []byte) (Signature, error) {
	h, err := prepareHash(s, hash)
	if err != nil {
		return Signature{}, err
	}

	var k bigint.Elem
	var r bigint.Elem
	for {
		var kp curve.Point
		k, kp, err = s.GeneratePair(rng)
		if err != nil {
			return Signature{}, err
		}
		r = bigint.Mod(kp.X, s.Order)
		if !r.IsZero() {
			break
		}
	}

	dr := bigint.MulMod(d, r, s.Order)
	num := bigint.AddMod(dr, h, s.Order)
	sVal := bigint.DivMod(num, k, s.Order)

	return Signature{R: r, S: sVal}, nil
}

// Verify reports whether sig is a valid ECDSA signature over hash under
// the public key q. An invalid signature is a plain false return, not an
// error; a malformed hash is reported as an error.
func Verify(s schema.Schema, q curve.Point, hash []byte, sig Signature) (bool, error) {
	h, err := prepareHash(s, hash)
	if err != nil {
		return false, err
	}

	if sig.R.IsZero() || sig.R.Cmp(s.Order) >= 0 {
		return false, nil
	}
	if sig.S.IsZero() || sig.S.Cmp(s.Order) >= 0 {
		return false, nil
	}

	sInv := bigint.InvMod(sig.S, s.Order)
	u1 := bigint.MulMod(sInv, h, s.Order)
	u2 := bigint.MulMod(sInv, sig.R, s.Order)

	p := s.Curve.Add(s.PointAt(u1), curve.Mul(s.Curve, q, u2))
	if p.Equal(s.Curve.Identity()) {
		return false, nil
	}

	return bigint.Mod(p.X, s.Order).Equal(sig.R), nil
}
