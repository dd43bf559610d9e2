package rng

// Park–Miller "minimal standard" generator with the same recurrence and zero
// seed substitution as the C library's rand_r, so seeded sequences match the
// game clients bit for bit.
const (
	pmMultiplier = 16807
	pmModulus    = 2147483647 // 2^31 - 1
	pmQuotient   = 127773     // pmModulus / pmMultiplier
	pmRemainder  = 2836       // pmModulus % pmMultiplier
	pmZeroSeed   = 0x12345987

	// MaxSample is the largest value Sample can return.
	MaxSample = 0x7fffffff
)

type parkMiller struct {
	state uint32
}

func (g *parkMiller) seed(s uint32) {
	g.state = s
}

// next advances the generator using Schrage's decomposition, which keeps the
// product inside 32 bits before the modulus.
func (g *parkMiller) next() int {
	s := int64(g.state)
	if s == 0 {
		s = pmZeroSeed
	}
	k := s / pmQuotient
	s = pmMultiplier*(s-k*pmQuotient) - pmRemainder*k
	if s < 0 {
		s += pmModulus
	}
	g.state = uint32(s)
	return int(g.state & MaxSample)
}
