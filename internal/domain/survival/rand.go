package survival

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the random source consumed by the simulation. *rand.Rand from
// math/rand/v2 satisfies it; tests may script the sequence.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand derives a PCG source from an int64 seed. Non-cryptographic PRNG is
// intentional: identically seeded sessions must replay identically.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
