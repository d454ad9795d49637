package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for range 16 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestHashSeed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, HashSeed(48, 49, 0), HashSeed(48, 49, 0))
	assert.NotEqual(t, HashSeed(48, 49, 0), HashSeed(49, 48, 0))
	assert.NotEqual(t, HashSeed(48, 49, 0), HashSeed(48, 49, 3))
}

func TestLCGSequence(t *testing.T) {
	t.Parallel()
	g := NewLCG(0)
	assert.Equal(t, uint64(1), g.Next())
	assert.Equal(t, uint64(lcgMultiplier+1), g.Next())

	g = NewLCG(12345)
	for range 1000 {
		v := g.IntN(47)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 47)
	}
}

func TestLCGCoversRange(t *testing.T) {
	t.Parallel()
	g := NewLCG(HashSeed(1, 2, 3))
	seen := make(map[int]bool)
	for range 2000 {
		seen[g.IntN(10)] = true
	}
	assert.Len(t, seen, 10)
}
