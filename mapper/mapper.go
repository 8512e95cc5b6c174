// Package mapper implements probabilistic embedding of arbitrary byte
// payloads into sequences of curve points, and the inverse recovery.
package mapper

import (
	"github.com/pkg/errors"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/curve"
	"github.com/sammyne/bigi-ecc/schema"
)

// ErrEmbeddingFailed is returned when a payload cannot be embedded under
// MaxAttempts (when one is configured).
var ErrEmbeddingFailed = errors.New("mapper: exhausted search attempts embedding block")

// Mapper embeds byte payloads onto a curve's points and recovers them.
// block_size is derived from the curve's bit width, reserving one byte as
// a trial nonce and one byte of headroom below the modulus.
type Mapper struct {
	Curve     curve.Curve
	finder    curve.YFinder
	blockSize int
	// MaxAttempts bounds the per-block y-recovery search; 0 means
	// unbounded, matching the source's liveness assumption on field
	// statistics.
	MaxAttempts int
}

// New builds a Mapper over the given schema. It returns an error if the
// schema's curve does not support y-recovery (curve.YFinder).
func New(s schema.Schema) (*Mapper, error) {
	finder, ok := s.Curve.(curve.YFinder)
	if !ok {
		return nil, errors.Errorf("mapper: curve %q cannot recover y from x", s.Title)
	}
	blockSize := s.Bits/8 - 2
	if blockSize <= 0 {
		return nil, errors.Errorf("mapper: curve %q bit width too small for embedding", s.Title)
	}
	return &Mapper{Curve: s.Curve, finder: finder, blockSize: blockSize}, nil
}

// BlockSize returns the maximum number of payload bytes carried per point.
func (m *Mapper) BlockSize() int {
	return m.blockSize
}

// coordWidth is the byte width used to serialize a full x coordinate: one
// more than the block, to hold the reserved low nonce byte.
func (m *Mapper) coordWidth() int {
	return m.blockSize + 1
}

// Pack embeds body into a sequence of curve points, one per stride of the
// interleaved byte layout.
func (m *Mapper) Pack(body []byte) ([]curve.Point, error) {
	l := len(body)
	if l == 0 {
		return nil, nil
	}

	step := (l + m.blockSize - 1) / m.blockSize
	points := make([]curve.Point, step)

	for idx := 0; idx < step; idx++ {
		var block []byte
		for pos := idx; pos < l; pos += step {
			block = append(block, body[pos])
		}

		p, err := m.embed(block)
		if err != nil {
			return nil, errors.Wrapf(err, "mapper: embedding block %d", idx)
		}
		points[idx] = p
	}

	return points, nil
}

// embed interprets block as a little-endian integer, reserves its low byte
// as a search counter, and walks x upward until the curve has a point at
// that abscissa.
func (m *Mapper) embed(block []byte) (curve.Point, error) {
	x := bigint.FromBytesLE(block).Lsh(1)

	attempts := 0
	for {
		y0, _, err := m.finder.FindY(x)
		if err == nil {
			return curve.Affine(x, y0), nil
		}
		if !errors.Is(err, bigint.ErrNonResidue) {
			return curve.Point{}, err
		}

		x = x.AddUint64(1)
		attempts++
		if m.MaxAttempts > 0 && attempts >= m.MaxAttempts {
			return curve.Point{}, ErrEmbeddingFailed
		}
	}
}

// Unpack recovers the byte payload embedded in points, de-interleaving
// each point's carried bytes and stripping trailing zero bytes.
func (m *Mapper) Unpack(points []curve.Point) []byte {
	step := len(points)
	if step == 0 {
		return nil
	}

	out := make([]byte, step*m.blockSize)
	for idx, p := range points {
		coord := p.X.BytesLE(m.coordWidth())
		block := coord[1:]
		for i, b := range block {
			out[idx+i*step] = b
		}
	}

	end := len(out)
	for end > 0 && out[end-1] == 0 {
		end--
	}
	return out[:end]
}
