package mapper_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/bigi-ecc/catalog"
	"github.com/sammyne/bigi-ecc/mapper"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	m, err := mapper.New(catalog.Secp256k1())
	require.NoError(t, err)

	payload := []byte("the quick brown fox jumps over the lazy dog")

	points, err := m.Pack(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, points)

	for _, p := range points {
		if !m.Curve.Contains(p) {
			t.Fatalf("embedded point not on curve: %s", spew.Sdump(p))
		}
	}

	got := m.Unpack(points)
	if !assert.Equal(t, payload, got) {
		t.Logf("packed points: %s", spew.Sdump(points))
	}
}

func TestPackUnpackEmpty(t *testing.T) {
	m, err := mapper.New(catalog.Secp256k1())
	require.NoError(t, err)

	points, err := m.Pack(nil)
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Empty(t, m.Unpack(points))
}

func TestPackUnpackAcrossFamilies(t *testing.T) {
	for _, s := range catalog.All() {
		m, err := mapper.New(s)
		require.NoError(t, err)

		payload := []byte("block-embedding across curve families")
		points, err := m.Pack(payload)
		require.NoError(t, err)

		got := m.Unpack(points)
		assert.Equal(t, payload, got, "schema %s", s.Title)
	}
}
