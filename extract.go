package sfmt

import (
	"encoding/binary"
	"math/bits"
)

// Read fills p with pseudo-random bytes and always returns len(p), nil.
// Whole 8-byte chunks are little-endian Uint64 values; a tail of 5..7 bytes is cut from one
// Uint64 value, a tail of 1..4 bytes from one Uint32 value.
// Read makes SFMT an io.Reader, but the bytes are not suitable for cryptographic keys.
func (s *SFMT) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}
	var tail [8]byte
	switch {
	case len(p) > 4:
		binary.LittleEndian.PutUint64(tail[:], s.Uint64())
		copy(p, tail[:])
	case len(p) > 0:
		binary.LittleEndian.PutUint32(tail[:], s.Uint32())
		copy(p, tail[:])
	}
	return n, nil
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0) with 53-bit resolution
// (genrand_res53). It consumes one Uint64 value.
func (s *SFMT) Float64() float64 {
	return float64(s.Uint64()>>11) * (1.0 / 9007199254740992.0)
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0) with 24-bit resolution.
// It consumes one Uint32 value.
func (s *SFMT) Float32() float32 {
	return float32(s.Uint32()>>8) * (1.0 / 16777216.0)
}

// Real1 returns a float64 in the closed interval [0, 1] with 32-bit resolution.
func (s *SFMT) Real1() float64 {
	return float64(s.Uint32()) * (1.0 / 4294967295.0)
}

// Real2 returns a float64 in [0, 1) with 32-bit resolution.
func (s *SFMT) Real2() float64 {
	return float64(s.Uint32()) * (1.0 / 4294967296.0)
}

// Real3 returns a float64 in the open interval (0, 1) with 32-bit resolution.
func (s *SFMT) Real3() float64 {
	return (float64(s.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Uint32N returns a non-negative pseudo-random number in the half-open interval [0,n).
// It avoids division in the common case and compensates for bias.
// For n=0 and n=1, Uint32N returns 0.
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (s *SFMT) Uint32N(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	prod := uint64(s.Uint32()) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			prod = uint64(s.Uint32()) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Uint64N is the 64-bit counterpart of Uint32N.
func (s *SFMT) Uint64N(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}

// blockView presents a caller's array as a sequence of 128-bit words.
type blockView interface {
	blocks() int
	load(k int) W128
	store(k int, w W128)
}

type lanes32 []uint32

func (a lanes32) blocks() int { return len(a) / 4 }

func (a lanes32) load(k int) W128 {
	return W128{a[4*k], a[4*k+1], a[4*k+2], a[4*k+3]}
}

func (a lanes32) store(k int, w W128) {
	copy(a[4*k:4*k+4], w[:])
}

type lanes64 []uint64

func (a lanes64) blocks() int { return len(a) / 2 }

func (a lanes64) load(k int) W128 {
	lo, hi := a[2*k], a[2*k+1]
	return W128{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (a lanes64) store(k int, w W128) {
	a[2*k] = uint64(w[1])<<32 | uint64(w[0])
	a[2*k+1] = uint64(w[3])<<32 | uint64(w[2])
}

// genRandArray runs the recursion directly into dst (gen_rand_array). dst must hold at least N
// words. Afterwards the last N words of dst are the state and the buffer is still drained, so the
// sequence continues exactly as if every word had been drawn from the buffer.
func (s *SFMT) genRandArray(dst blockView) {
	st := s.state
	p := &s.params
	n := len(st)
	size := dst.blocks()
	r1, r2 := st[n-2], st[n-1]
	for i := range size {
		var a, b W128
		if i < n {
			a = st[i]
		} else {
			a = dst.load(i - n)
		}
		if j := i + p.POS1; j < n {
			b = st[j]
		} else {
			b = dst.load(j - n)
		}
		w := Recursion(p, a, b, r1, r2)
		dst.store(i, w)
		r1, r2 = r2, w
	}
	for j := range n {
		st[j] = dst.load(size - n + j)
	}
}

// FillArray32 fills dst with the next len(dst) values of the Uint32 sequence.
// If the buffer is drained and len(dst) is a multiple of 4 and at least Params().MinArraySize32(),
// the values are generated in place without going through the state buffer.
func (s *SFMT) FillArray32(dst []uint32) {
	s.lazySeed()
	n32 := s.params.N32()
	if s.idx == n32 && len(dst)%4 == 0 && len(dst) >= n32 {
		s.genRandArray(lanes32(dst))
		return
	}
	for i := range dst {
		dst[i] = s.Uint32()
	}
}

// FillArray64 fills dst with the next len(dst) values of the Uint64 sequence.
// If the buffer is drained and len(dst) is even and at least Params().MinArraySize64(),
// the values are generated in place without going through the state buffer.
func (s *SFMT) FillArray64(dst []uint64) {
	s.lazySeed()
	n64 := s.params.N64()
	if s.idx == s.params.N32() && len(dst)%2 == 0 && len(dst) >= n64 {
		s.genRandArray(lanes64(dst))
		return
	}
	for i := range dst {
		dst[i] = s.Uint64()
	}
}
