// Package bigint is the modular-arithmetic layer the rest of this
// module is built on. It stands in for the big-integer collaborator the ECC
// core treats as an external dependency: construction from small integers,
// hex and little-endian bytes; codecs back out; comparisons and bit access;
// and modular arithmetic over a prime modulus, including modular square
// roots.
//
// All arithmetic is performed with math/big under the hood. Elem values are
// plain, freely-copyable wrappers: there is no shared mutable state.
package bigint

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrNonResidue is returned by SqrtMod when the argument has no square root
// modulo the given prime.
var ErrNonResidue = errors.New("bigint: not a quadratic residue")

// Elem is a non-negative arbitrary-precision integer.
type Elem struct {
	v *big.Int
}

// Zero is the additive identity.
var Zero = FromUint64(0)

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 builds an Elem from a small unsigned integer.
func FromUint64(x uint64) Elem {
	return Elem{v: new(big.Int).SetUint64(x)}
}

// FromHex parses a "0x"-prefixed hex string. The prefix is required; case of
// the digits is accepted either way on parse, though Hex always emits
// uppercase.
func FromHex(s string) (Elem, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Elem{}, errors.Errorf("bigint: hex literal %q missing 0x prefix", s)
	}
	digits := s[2:]
	if digits == "" {
		return Elem{}, errors.Errorf("bigint: empty hex literal %q", s)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return Elem{}, errors.Errorf("bigint: invalid hex literal %q", s)
	}
	return Elem{v: v}, nil
}

// MustFromHex is FromHex but panics on error; it exists for constructing the
// literal named-curve parameter tables at package-init time.
func MustFromHex(s string) Elem {
	e, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return e
}

// FromBytesLE decodes a fixed-length little-endian byte slice.
func FromBytesLE(b []byte) Elem {
	be := make([]byte, len(b))
	reverseBytes(be, b)
	return Elem{v: new(big.Int).SetBytes(be)}
}

// Hex renders the value as "0x" followed by uppercase hex digits, with no
// leading zero padding (matching the Point codec's to_hex format).
func (e Elem) Hex() string {
	if e.v.Sign() == 0 {
		return "0x0"
	}
	return "0x" + strings.ToUpper(e.v.Text(16))
}

// BytesLE returns the fixed-width, zero-padded little-endian encoding of the
// value. It panics if the value does not fit in width bytes, since that
// indicates a caller-side width/modulus mismatch rather than a recoverable
// condition.
func (e Elem) BytesLE(width int) []byte {
	be := e.v.Bytes()
	if len(be) > width {
		panic("bigint: value does not fit in requested width")
	}
	out := make([]byte, width)
	// place big-endian bytes right-aligned, then reverse into little-endian.
	copy(out[width-len(be):], be)
	reverseBytes(out, out)
	return out
}

// Cmp returns -1, 0, or +1 as e is less than, equal to, or greater than o.
func (e Elem) Cmp(o Elem) int {
	return e.v.Cmp(o.v)
}

// Equal reports whether e and o have the same value.
func (e Elem) Equal(o Elem) bool {
	return e.v.Cmp(o.v) == 0
}

// IsZero reports whether the value is 0.
func (e Elem) IsZero() bool {
	return e.v.Sign() == 0
}

// BitLen returns the number of bits required to represent the value, i.e.
// the index of the highest set bit plus one (0 for the zero value).
func (e Elem) BitLen() int {
	return e.v.BitLen()
}

// Bit returns bit i of the value (0 or 1), where bit 0 is the
// least-significant bit.
func (e Elem) Bit(i int) uint {
	return e.v.Bit(i)
}

// Lsh shifts the value left by the given number of bytes (i.e. 8*nBytes
// bits). It is used by the Mapper to reserve the low byte of a block value
// as a search counter.
func (e Elem) Lsh(nBytes uint) Elem {
	return Elem{v: new(big.Int).Lsh(e.v, 8*nBytes)}
}

// AddUint64 adds a small unsigned constant, returning an unreduced sum.
func (e Elem) AddUint64(x uint64) Elem {
	return Elem{v: new(big.Int).Add(e.v, new(big.Int).SetUint64(x))}
}

// AddMod returns (a+b) mod m.
func AddMod(a, b, m Elem) Elem {
	return Elem{v: new(big.Int).Mod(new(big.Int).Add(a.v, b.v), m.v)}
}

// SubMod returns (a-b) mod m, normalized into [0, m).
func SubMod(a, b, m Elem) Elem {
	return Elem{v: new(big.Int).Mod(new(big.Int).Sub(a.v, b.v), m.v)}
}

// MulMod returns (a*b) mod m.
func MulMod(a, b, m Elem) Elem {
	return Elem{v: new(big.Int).Mod(new(big.Int).Mul(a.v, b.v), m.v)}
}

// InvMod returns the multiplicative inverse of a modulo the prime m.
func InvMod(a, m Elem) Elem {
	return Elem{v: new(big.Int).ModInverse(a.v, m.v)}
}

// DivMod returns a * b^-1 mod m.
func DivMod(a, b, m Elem) Elem {
	return MulMod(a, InvMod(b, m), m)
}

// SqrtMod returns the two square roots (y0, m-y0) of a modulo the prime m,
// or ErrNonResidue if a is not a quadratic residue mod m.
func SqrtMod(a, m Elem) (Elem, Elem, error) {
	aMod := new(big.Int).Mod(a.v, m.v)
	if aMod.Sign() == 0 {
		return Elem{v: big.NewInt(0)}, Elem{v: big.NewInt(0)}, nil
	}

	y := new(big.Int).ModSqrt(aMod, m.v)
	if y == nil {
		return Elem{}, Elem{}, ErrNonResidue
	}
	other := new(big.Int).Sub(m.v, y)
	y0, y1 := Elem{v: y}, Elem{v: other}
	if y0.Cmp(y1) > 0 {
		y0, y1 = y1, y0
	}
	return y0, y1, nil
}

// Random draws a value uniformly from [0, 2^bits) using rng as the entropy
// source. A nil rng defaults to crypto/rand.Reader.
func Random(bits int, rng io.Reader) (Elem, error) {
	if rng == nil {
		rng = rand.Reader
	}
	nBytes := (bits + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Elem{}, errors.Wrap(err, "bigint: reading randomness")
	}
	v := new(big.Int).SetBytes(buf)

	excess := uint(nBytes*8 - bits)
	if excess > 0 {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		mask.Sub(mask, big.NewInt(1))
		v.And(v, mask)
	}
	return Elem{v: v}, nil
}

// Mod reduces a modulo m, returning a value in [0, m).
func Mod(a, m Elem) Elem {
	return Elem{v: new(big.Int).Mod(a.v, m.v)}
}

func reverseBytes(dst, src []byte) {
	l := len(dst)
	if len(src) != l {
		panic("bigint: mismatched slice lengths in reverse")
	}
	if l == 0 {
		return
	}
	tmp := make([]byte, l)
	for i := 0; i < l; i++ {
		tmp[i] = src[l-1-i]
	}
	copy(dst, tmp)
}
