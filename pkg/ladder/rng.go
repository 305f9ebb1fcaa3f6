package ladder

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies independent uniform draws in [0, 1) for ladder generation.
// Abstracting randomness behind an interface keeps Generate deterministic
// under test: pass a seeded or scripted source instead of the default.
type Source interface {
	Float64() float64
}

// DefaultSource returns a Source seeded from the operating system's
// cryptographic random number generator. Each call produces an independent
// generator, so concurrent generations do not contend on shared state.
func DefaultSource() Source {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand is documented to never fail on supported platforms;
		// fall back to the shared global generator if it somehow does.
		return globalSource{}
	}
	s1 := binary.LittleEndian.Uint64(seed[:8])
	s2 := binary.LittleEndian.Uint64(seed[8:])
	return rand.New(rand.NewPCG(s1, s2))
}

// SeededSource returns a deterministic Source backed by a PCG generator.
// Identical seeds produce identical ladders, which is useful for
// reproducible draws and for tests.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}

// globalSource delegates to math/rand/v2's package-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
