package shell

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract

type RandomSource interface {
	IntN(n int) int // [0, n)
}

// DefaultRNG returns a ChaCha8 generator seeded from crypto/rand.
// Not safe for concurrent use; each worker takes its own.
func DefaultRNG() RandomSource {
	var seed [32]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		// back to math/rand/v2
		for i := 0; i < len(seed); i += 8 {
			binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
		}
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Replicable RNG (e.g. Monte Carlo). stream separates independent workers
// that share a seed.
func NewSeededRNG(seed, stream uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, stream))
}

// Between draws uniformly from the closed range [lo, hi].
func Between(rng RandomSource, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// DrawExcluding draws uniformly from [lo, hi] rejecting exclude.
// Expected draws per call: n/(n-1) for a range of n values.
// The range must hold at least one value other than exclude.
func DrawExcluding(rng RandomSource, lo, hi, exclude int) int {
	v := exclude
	for v == exclude {
		v = Between(rng, lo, hi)
	}
	return v
}
