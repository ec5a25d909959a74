package rtcompare

// XorShift is the xorshift* generator (see https://en.wikipedia.org/wiki/Xorshift#xorshift*) used as
// the small-state baseline when measuring SFMT. It has a period of 2^64-1 and a state of 8 bytes.
// This random number generator is deterministic, not cryptographically secure and not thread-safe.
// The state must not be zero; NewXorShift takes care of that.
type XorShift struct {
	State uint64
}

// zeroSeedReplacement is used for a zero seed, which would lock xorshift* at zero forever.
const zeroSeedReplacement = 0x9e3779b97f4a7c15

// NewXorShift returns a xorshift* generator seeded with seed.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &XorShift{State: seed}
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a constant runtime and a high probability to be inlined by the compiler.
func (x *XorShift) Uint64() uint64 {
	s := x.State
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.State = s
	return s * 0x2545F4914F6CDD1D
}

// Uint32 returns the high half of the next Uint64 value.
func (x *XorShift) Uint32() uint32 {
	return uint32(x.Uint64() >> 32)
}
