// Package catalog holds ready-to-use named curve schemas spanning all
// three curve families: secp256k1 and fp254bnb (short Weierstrass),
// Curve25519 (Montgomery) and Curve1174 (Edwards).
package catalog

import (
	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
	"github.com/sammyne/bigi-ecc/schema"
)

// Secp256k1 is the curve used by Bitcoin and Ethereum: short Weierstrass
// with A=0, B=7.
func Secp256k1() schema.Schema {
	return schema.Schema{
		Title: "secp256k1",
		Curve: curve.Weierstrass{
			A: bigint.Zero,
			B: bigint.FromUint64(7),
			M: bigint.MustFromHex("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		},
		Order:    bigint.MustFromHex("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		Cofactor: bigint.One,
		Generator: curve.Affine(
			bigint.MustFromHex("0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
			bigint.MustFromHex("0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		),
		Bits: 256,
	}
}

// Fp254bnb is a 254-bit Barreto-Naehrig-family short Weierstrass curve
// (A=0, B=2): parameter-set only, since pairing evaluation is out of
// scope for this library.
func Fp254bnb() schema.Schema {
	return schema.Schema{
		Title: "fp254bnb",
		Curve: curve.Weierstrass{
			A: bigint.Zero,
			B: bigint.FromUint64(2),
			M: bigint.MustFromHex("0x2523648240000001BA344D80000000086121000000000013A700000000000013"),
		},
		Order:    bigint.MustFromHex("0x2523648240000001BA344D8000000007FF9F800000000010A10000000000000D"),
		Cofactor: bigint.One,
		Generator: curve.Affine(
			bigint.MustFromHex("0x2523648240000001BA344D80000000086121000000000013A700000000000012"),
			bigint.One,
		),
		Bits: 254,
	}
}

// Curve25519 is Bernstein's Montgomery curve (A=486662, B=1), as used by
// X25519.
func Curve25519() schema.Schema {
	return schema.Schema{
		Title: "Curve25519",
		Curve: curve.Montgomery{
			A: bigint.FromUint64(486662),
			B: bigint.One,
			M: bigint.MustFromHex("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED"),
		},
		Order:    bigint.MustFromHex("0x1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		Cofactor: bigint.FromUint64(8),
		Generator: curve.Affine(
			bigint.FromUint64(9),
			bigint.MustFromHex("0x20AE19A1B8A086B4E01EDD2C7748D14C923D4D7E6D7C61B229E9C5A27ECED3D9"),
		),
		Bits: 255,
	}
}

// Curve1174 is Bernstein-Hamburg-Krasnova-Lange's Edwards curve
// x^2+y^2=1-1174*x^2*y^2 over the 251-bit prime 2^251-9, i.e. curve.Edwards
// with D = m-1174. Its group has 4*n points for a 249-bit prime n.
func Curve1174() schema.Schema {
	m := bigint.MustFromHex("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7")
	return schema.Schema{
		Title: "Curve1174",
		Curve: curve.Edwards{
			D: bigint.SubMod(bigint.Zero, bigint.FromUint64(1174), m),
			M: m,
		},
		Order:    bigint.MustFromHex("0x1FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF77965C4DFD307348944D45FD166C971"),
		Cofactor: bigint.FromUint64(4),
		Generator: curve.Affine(
			bigint.MustFromHex("0x37FBB0CEA308C479343AEE7C029A190C021D96A492ECD6516123F27BCE29EDA"),
			bigint.MustFromHex("0x6B72F82D47FB7CC6656841169840E0C4FE2DEE2AF3F976BA4CCB1BF9B46360E"),
		),
		Bits: 251,
	}
}

// All returns every named schema, keyed by title.
func All() map[string]schema.Schema {
	return map[string]schema.Schema{
		"secp256k1":  Secp256k1(),
		"fp254bnb":   Fp254bnb(),
		"Curve25519": Curve25519(),
		"Curve1174":  Curve1174(),
	}
}
