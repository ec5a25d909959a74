// Package sfmt implements the SIMD-oriented Fast Mersenne Twister (SFMT) of
// Mutsuo Saito and Makoto Matsumoto, version 1.5.1, in portable Go.
//
// The generator keeps N 128-bit words of state, advances all of them at once
// with a linear recursion over GF(2), and hands the words out 32 or 64 bits at
// a time. For a given seed the output is bit-identical to the reference C
// implementation (see http://www.math.sci.hiroshima-u.ac.jp/m-mat/MT/SFMT/).
package sfmt

import "encoding/binary"

const (
	initMultiplier = 1812433253
	arrayFill      = 0x8b8b8b8b
	arrayMult1     = 1664525
	arrayMult2     = 1566083941
)

// SFMT is a Deterministic Pseudo-Random Number Generator based on the SIMD-oriented Fast Mersenne Twister.
// This random number generator is deterministic in the sequence of numbers it generates. Its period is a
// multiple of 2^MEXP-1 (2^19937-1 for the default parameters).
// This random number generator has an amortized constant runtime: every 4*N-th 32-bit value triggers a
// refill of the whole state, all other calls are a plain read.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe. Use one instance per goroutine.
// This random number generator has a memory footprint of 16*N bytes (2.5 KiB for MEXP 19937).
// It does not allocate after construction.
// The zero value is ready to use and produces the same sequence as New(0).
type SFMT struct {
	params Params
	state  []W128
	idx    int // consumed 32-bit lanes since the last refill
}

func newGenerator(p Params) *SFMT {
	return &SFMT{params: p, state: make([]W128, p.N)}
}

// allocate gives a zero value the default parameter set and an unseeded state.
func (s *SFMT) allocate() {
	if s.state == nil {
		s.params = paramTable[DefaultMEXP]
		s.state = make([]W128, s.params.N)
	}
}

// lazySeed turns a zero value into New(0).
func (s *SFMT) lazySeed() {
	if s.state == nil {
		s.Seed(0)
	}
}

// New returns an SFMT-19937 generator seeded with seed.
func New(seed uint32) *SFMT {
	s := newGenerator(paramTable[DefaultMEXP])
	s.Seed(seed)
	return s
}

// NewByArray returns an SFMT-19937 generator seeded with the key sequence.
// An empty key is valid.
func NewByArray(key []uint32) *SFMT {
	s := newGenerator(paramTable[DefaultMEXP])
	s.SeedArray(key)
	return s
}

// NewMEXP returns a generator for the Mersenne exponent mexp seeded with seed.
// The error wraps ErrUnsupportedMEXP if there is no parameter set for mexp.
func NewMEXP(mexp int, seed uint32) (*SFMT, error) {
	p, err := ParamsFor(mexp)
	if err != nil {
		return nil, err
	}
	s := newGenerator(p)
	s.Seed(seed)
	return s, nil
}

// NewMEXPByArray returns a generator for the Mersenne exponent mexp seeded with the key sequence.
func NewMEXPByArray(mexp int, key []uint32) (*SFMT, error) {
	p, err := ParamsFor(mexp)
	if err != nil {
		return nil, err
	}
	s := newGenerator(p)
	s.SeedArray(key)
	return s, nil
}

// FromSeed returns an SFMT-19937 generator seeded with the little-endian interpretation of seed.
func FromSeed(seed [4]byte) *SFMT {
	return New(binary.LittleEndian.Uint32(seed[:]))
}

// Params returns the parameter set of the generator.
func (s *SFMT) Params() Params {
	s.lazySeed()
	return s.params
}

// Index returns the number of 32-bit lanes consumed since the last refill.
// A value of 4*N means the next request triggers a refill.
func (s *SFMT) Index() int {
	s.lazySeed()
	return s.idx
}

// State returns a copy of the internal state words.
func (s *SFMT) State() []W128 {
	s.lazySeed()
	out := make([]W128, len(s.state))
	copy(out, s.state)
	return out
}

// Clone returns an independent generator that continues with exactly the same sequence.
func (s *SFMT) Clone() *SFMT {
	s.lazySeed()
	c := newGenerator(s.params)
	copy(c.state, s.state)
	c.idx = s.idx
	return c
}

func (s *SFMT) lane(i int) uint32 {
	return s.state[i>>2][i&3]
}

func (s *SFMT) setLane(i int, v uint32) {
	s.state[i>>2][i&3] = v
}

// Seed reinitializes the state from a 32-bit seed (init_gen_rand).
func (s *SFMT) Seed(seed uint32) {
	s.allocate()
	n32 := s.params.N32()
	prev := seed
	s.setLane(0, prev)
	for i := 1; i < n32; i++ {
		prev = initMultiplier*(prev^(prev>>30)) + uint32(i)
		s.setLane(i, prev)
	}
	s.idx = n32
	s.periodCertification()
}

func mix1(x uint32) uint32 {
	return (x ^ (x >> 27)) * arrayMult1
}

func mix2(x uint32) uint32 {
	return (x ^ (x >> 27)) * arrayMult2
}

// SeedArray reinitializes the state from a key sequence (init_by_array).
// Keys longer than the state are mixed in completely.
func (s *SFMT) SeedArray(key []uint32) {
	s.allocate()
	n32 := s.params.N32()
	var lag int
	switch {
	case n32 >= 623:
		lag = 11
	case n32 >= 68:
		lag = 7
	case n32 >= 39:
		lag = 5
	default:
		lag = 3
	}
	mid := (n32 - lag) / 2

	for i := range s.state {
		s.state[i] = W128{arrayFill, arrayFill, arrayFill, arrayFill}
	}
	count := max(len(key)+1, n32)

	add := func(j int, r uint32) {
		s.setLane(j, s.lane(j)+r)
	}
	xor := func(j int, r uint32) {
		s.setLane(j, s.lane(j)^r)
	}

	r := mix1(s.lane(0) ^ s.lane(mid) ^ s.lane(n32-1))
	add(mid, r)
	r += uint32(len(key))
	add(mid+lag, r)
	s.setLane(0, r)

	i := 1
	for j := 1; j < count; j++ {
		r = mix1(s.lane(i) ^ s.lane((i+mid)%n32) ^ s.lane((i+n32-1)%n32))
		add((i+mid)%n32, r)
		if j-1 < len(key) {
			r += key[j-1]
		}
		r += uint32(i)
		add((i+mid+lag)%n32, r)
		s.setLane(i, r)
		i = (i + 1) % n32
	}
	for range n32 {
		r = mix2(s.lane(i) + s.lane((i+mid)%n32) + s.lane((i+n32-1)%n32))
		xor((i+mid)%n32, r)
		r -= uint32(i)
		xor((i+mid+lag)%n32, r)
		s.setLane(i, r)
		i = (i + 1) % n32
	}

	s.idx = n32
	s.periodCertification()
}

// periodCertification makes sure the state lies in the subspace with the full period.
// If the parity of state[0] & PARITY is even, it flips the lowest bit set in the parity vector.
func (s *SFMT) periodCertification() {
	parity := &s.params.Parity
	w := &s.state[0]
	var inner uint32
	for i := range 4 {
		inner ^= w[i] & parity[i]
	}
	for sh := 16; sh > 0; sh >>= 1 {
		inner ^= inner >> sh
	}
	if inner&1 == 1 {
		return
	}
	for i := range 4 {
		if parity[i] != 0 {
			w[i] ^= parity[i] & -parity[i]
			return
		}
	}
}

// genRandAll advances every state word by one recursion step, in increasing index order.
func (s *SFMT) genRandAll() {
	st := s.state
	p := &s.params
	n := len(st)
	r1, r2 := st[n-2], st[n-1]
	i := 0
	for ; i < n-p.POS1; i++ {
		st[i] = Recursion(p, st[i], st[i+p.POS1], r1, r2)
		r1, r2 = r2, st[i]
	}
	for ; i < n; i++ {
		st[i] = Recursion(p, st[i], st[i+p.POS1-n], r1, r2)
		r1, r2 = r2, st[i]
	}
}

// Uint32 returns the next 32-bit value of the sequence.
func (s *SFMT) Uint32() uint32 {
	if s.idx >= len(s.state)*4 {
		s.lazySeed()
		s.genRandAll()
		s.idx = 0
	}
	v := s.lane(s.idx)
	s.idx++
	return v
}

// Uint64 returns the next 64-bit value of the sequence. The value is composed of two
// consecutive 32-bit values, the first one in the low half and the second one in the high half.
func (s *SFMT) Uint64() uint64 {
	s.lazySeed()
	n32 := len(s.state) * 4
	if s.idx >= n32 {
		s.genRandAll()
		s.idx = 0
	}
	if s.idx == n32-1 {
		// the high half comes from the next refill
		lo := s.Uint32()
		return uint64(s.Uint32())<<32 | uint64(lo)
	}
	v := uint64(s.lane(s.idx+1))<<32 | uint64(s.lane(s.idx))
	s.idx += 2
	return v
}
