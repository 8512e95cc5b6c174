package catalog_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/catalog"
)

func TestSecp256k1(t *testing.T) {
	s := catalog.Secp256k1()
	assert.True(t, s.Curve.Contains(s.Generator))
	assert.True(t, s.Curve.Contains(s.PointAt(bigint.FromUint64(25))))
	assert.True(t, s.PointAt(s.Order).Equal(s.Curve.Identity()))
}

// TestSecp256k1MatchesBtcec cross-checks this package's literal secp256k1
// parameters against btcec's well-known implementation.
func TestSecp256k1MatchesBtcec(t *testing.T) {
	s := catalog.Secp256k1()
	ref := btcec.S256()

	assert.Equal(t, ref.P.Text(16), mustBigHex(t, s.Curve.Modulus()))
	assert.Equal(t, ref.N.Text(16), mustBigHex(t, s.Order))
	assert.Equal(t, ref.Gx.Text(16), mustBigHex(t, s.Generator.X))
	assert.Equal(t, ref.Gy.Text(16), mustBigHex(t, s.Generator.Y))
}

func mustBigHex(t *testing.T, e bigint.Elem) string {
	t.Helper()
	hx := e.Hex()
	// Elem.Hex is "0x"-prefixed and uppercase; big.Int.Text(16) is
	// unprefixed and lowercase.
	lower := hx[2:]
	out := make([]byte, len(lower))
	for i, c := range []byte(lower) {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		} else {
			out[i] = c
		}
	}
	return string(out)
}

func TestFp254bnb(t *testing.T) {
	s := catalog.Fp254bnb()
	assert.True(t, s.Curve.Contains(s.Generator))
	assert.True(t, s.Curve.Contains(s.PointAt(bigint.FromUint64(25))))
	assert.True(t, s.PointAt(s.Order).Equal(s.Curve.Identity()))
}

func TestCurve25519(t *testing.T) {
	s := catalog.Curve25519()
	assert.True(t, s.Curve.Contains(s.Generator))
	assert.True(t, s.Curve.Contains(s.PointAt(bigint.FromUint64(25))))
	assert.True(t, s.PointAt(s.Order).Equal(s.Curve.Identity()))
}

func TestCurve1174(t *testing.T) {
	s := catalog.Curve1174()
	assert.True(t, s.Curve.Contains(s.Generator))
	assert.True(t, s.Curve.Contains(s.PointAt(bigint.FromUint64(25))))
	assert.True(t, s.PointAt(s.Order).Equal(s.Curve.Identity()))
}

func TestAllContainsFourSchemas(t *testing.T) {
	assert.Len(t, catalog.All(), 4)
}
