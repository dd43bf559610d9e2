// Package randutil derives reproducible seeds and generators for code that
// fans work out across goroutines.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two PCG seeds
// are derived with splitmix64 so that nearby seeds do not produce correlated
// streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for an independent stream of a base seed, e.g. one
// per worker. Stream 0 is not the base seed itself.
func Derive(seed int64, stream int) int64 {
	return int64(mix(uint64(seed) + uint64(stream+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
