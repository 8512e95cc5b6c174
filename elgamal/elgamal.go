// Package elgamal implements ElGamal encryption over curve points.
package elgamal

import (
	"io"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
	"github.com/sammyne/bigi-ecc/mapper"
	"github.com/sammyne/bigi-ecc/schema"
)

// Ciphertext is the ElGamal output: the ephemeral public point C1 and one
// masked point per plaintext point.
type Ciphertext struct {
	C1 curve.Point
	C2 []curve.Point
}

// Encrypt draws a fresh ephemeral key pair (y, C1 = y*G), computes the
// shared secret S = y*Q, and masks each message point with it. The
// ephemeral key MUST be freshly drawn for every call — reuse leaks the
// recipient's private key.
func Encrypt(rng io.Reader, s schema.Schema, q curve.Point, points []curve.Point) (Ciphertext, error) {
	y, c1, err := s.GeneratePair(rng)
	if err != nil {
		return Ciphertext{}, err
	}

	shared := curve.Mul(s.Curve, q, y)

	c2 := make([]curve.Point, len(points))
	for i, m := range points {
		c2[i] = s.Curve.Add(shared, m)
	}

	return Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the plaintext points given the recipient's private key.
func Decrypt(s schema.Schema, d bigint.Elem, ct Ciphertext) []curve.Point {
	shared := curve.Mul(s.Curve, ct.C1, d)
	negShared := s.Curve.Inv(shared)

	out := make([]curve.Point, len(ct.C2))
	for i, c2 := range ct.C2 {
		out[i] = s.Curve.Add(c2, negShared)
	}
	return out
}

// EncryptBytes is a convenience wrapper composing mapper.Pack with
// Encrypt, for callers that want to encrypt a byte payload directly
// without handling the point sequence themselves.
func EncryptBytes(rng io.Reader, s schema.Schema, q curve.Point, body []byte) (Ciphertext, error) {
	m, err := mapper.New(s)
	if err != nil {
		return Ciphertext{}, err
	}
	points, err := m.Pack(body)
	if err != nil {
		return Ciphertext{}, err
	}
	return Encrypt(rng, s, q, points)
}

// DecryptBytes is the inverse of EncryptBytes.
func DecryptBytes(s schema.Schema, d bigint.Elem, ct Ciphertext) ([]byte, error) {
	m, err := mapper.New(s)
	if err != nil {
		return nil, err
	}
	points := Decrypt(s, d, ct)
	return m.Unpack(points), nil
}
