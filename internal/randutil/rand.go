package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
	lcgMultiplier = 6364136223846793005
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(Mix(u), Mix(u+goldenRatio64)))
}

// Mix is the splitmix64 finaliser.
func Mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// HashSeed hashes the values, each encoded as 8 little-endian bytes, into a seed.
func HashSeed(values ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// LCG is a 64-bit linear congruential generator. It is not safe for
// concurrent use.
type LCG struct {
	state uint64
}

// NewLCG returns a generator starting from seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() uint64 {
	g.state = g.state*lcgMultiplier + 1
	return g.state
}

// IntN returns a value in [0, n) from the high bits of the next state.
// n must be positive.
func (g *LCG) IntN(n int) int {
	return int((g.Next() >> 33) % uint64(n))
}
