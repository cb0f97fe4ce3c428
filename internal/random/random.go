// Package random provides seed generation for the deal shuffle.
//
// Seeds come from crypto/rand so that fresh games are unpredictable, while
// the pseudo-random source built from a seed is fully deterministic, which
// keeps deals replayable.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// NewSeed derives a high-entropy seed from the system entropy pool, falling
// back to the clock if the pool is unavailable.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewRand returns a pseudo-random source seeded with seed. The same seed
// always produces the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
