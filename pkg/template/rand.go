package template

import (
	mathrand "math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// parseInt parses a token argument as a decimal integer.
func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// rngIntN returns a random int in [0, n) using the provided RNG if
// non-nil, otherwise the global math/rand/v2 source.
func rngIntN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// rngFloat64 returns a random float64 in [0, 1) using the provided RNG if
// non-nil, otherwise the global math/rand/v2 source.
func rngFloat64(rng *mathrand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return mathrand.Float64()
}

// rngUUID generates a UUID v4 string. When rng is non-nil the bytes come
// from the seeded PRNG for deterministic output; when nil, crypto-backed
// uuid.New is used.
func rngUUID(rng *mathrand.Rand) string {
	if rng == nil {
		return uuid.New().String()
	}
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant
	// FromBytes cannot fail on a 16-byte slice.
	return uuid.Must(uuid.FromBytes(b[:])).String()
}

// ctxRNG extracts the seeded RNG from a Context, or returns nil (use the
// global source).
func ctxRNG(ctx *Context) *mathrand.Rand {
	if ctx == nil {
		return nil
	}
	return ctx.Rand
}
