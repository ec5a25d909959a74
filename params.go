package sfmt

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// DefaultMEXP is the period exponent used by New and NewByArray.
const DefaultMEXP = 19937

// ErrUnsupportedMEXP is returned when no parameter set exists for a requested period exponent.
var ErrUnsupportedMEXP = errors.New("sfmt: unsupported period exponent")

// Params holds the fixed recursion parameters of one SFMT configuration.
// A configuration is identified by its Mersenne exponent MEXP; the generator
// has a period of at least 2^MEXP-1.
// The values must be identical on both sides of a save/restore or of a cross-implementation comparison.
type Params struct {
	MEXP   int       // Mersenne exponent of the period
	N      int       // number of 128-bit words in the state
	POS1   int       // offset of the second recursion input
	SL1    uint      // per-lane left shift in bits
	SL2    uint      // 128-bit left shift in bytes
	SR1    uint      // per-lane right shift in bits
	SR2    uint      // 128-bit right shift in bytes
	Mask   [4]uint32 // MSK1..MSK4
	Parity [4]uint32 // PARITY1..PARITY4, period certification vector
}

func params(mexp, pos1 int, sl1, sl2, sr1, sr2 uint, mask, parity [4]uint32) Params {
	return Params{
		MEXP:   mexp,
		N:      mexp/128 + 1,
		POS1:   pos1,
		SL1:    sl1,
		SL2:    sl2,
		SR1:    sr1,
		SR2:    sr2,
		Mask:   mask,
		Parity: parity,
	}
}

// parameter sets of SFMT 1.5.1
var paramTable = map[int]Params{
	607: params(607, 2, 15, 3, 13, 3,
		[4]uint32{0xfdff37ff, 0xef7f3f7d, 0xff777b7d, 0x7ff7fb2f},
		[4]uint32{0x00000001, 0x00000000, 0x00000000, 0x5986f054}),
	1279: params(1279, 7, 14, 3, 5, 1,
		[4]uint32{0xf7fefffd, 0x7fefcfff, 0xaff3ef3f, 0xb5ffff7f},
		[4]uint32{0x00000001, 0x00000000, 0x00000000, 0x20000000}),
	2281: params(2281, 12, 19, 1, 5, 1,
		[4]uint32{0xbff7ffbf, 0xfdfffffe, 0xf7ffef7f, 0xf2f7cbbf},
		[4]uint32{0x00000001, 0x00000000, 0x00000000, 0x41dfa600}),
	4253: params(4253, 17, 20, 1, 7, 1,
		[4]uint32{0x9f7bffff, 0x9fffff5f, 0x3efffffb, 0xfffff7bb},
		[4]uint32{0xa8000001, 0xaf5390a3, 0xb740b3f8, 0x6c11486d}),
	11213: params(11213, 68, 14, 3, 7, 3,
		[4]uint32{0xeffff7fb, 0xffffffef, 0xdfdfbfff, 0x7fffdbfd},
		[4]uint32{0x00000001, 0x00000000, 0xe8148000, 0xd0c7afa3}),
	19937: params(19937, 122, 18, 1, 11, 1,
		[4]uint32{0xdfffffef, 0xddfecb7f, 0xbffaffff, 0xbffffff6},
		[4]uint32{0x00000001, 0x00000000, 0x00000000, 0x13c9e684}),
	44497: params(44497, 330, 5, 3, 9, 3,
		[4]uint32{0xeffffffb, 0xdfbebfff, 0xbfbf7bef, 0x9ffd7bff},
		[4]uint32{0x00000001, 0x00000000, 0xa3ac4000, 0xecc1327a}),
	86243: params(86243, 366, 6, 7, 19, 1,
		[4]uint32{0xfdbffbff, 0xbff7ff3f, 0xfd77efff, 0xbf9ff3ff},
		[4]uint32{0x00000001, 0x00000000, 0x00000000, 0xe9528d85}),
	132049: params(132049, 110, 19, 1, 21, 1,
		[4]uint32{0xffffbb5f, 0xfb6ebf95, 0xfffefffa, 0xcff77fff},
		[4]uint32{0x00000001, 0x00000000, 0xcb520000, 0xc7e91c7d}),
	216091: params(216091, 627, 11, 3, 10, 1,
		[4]uint32{0xbff7bff7, 0xbfffffff, 0xbffffa7f, 0xffddfbfb},
		[4]uint32{0xf8000001, 0x89e80709, 0x3bd2b64b, 0x0c64b1e4}),
}

// ParamsFor returns the parameter set for the Mersenne exponent mexp.
// It fails with an error wrapping ErrUnsupportedMEXP if mexp is not one of SupportedMEXPs().
func ParamsFor(mexp int) (Params, error) {
	p, ok := paramTable[mexp]
	if !ok {
		return Params{}, errors.Wrapf(ErrUnsupportedMEXP, "mexp %d (supported: %v)", mexp, SupportedMEXPs())
	}
	return p, nil
}

// SupportedMEXPs lists the Mersenne exponents with a parameter set, in ascending order.
func SupportedMEXPs() []int {
	mexps := make([]int, 0, len(paramTable))
	for m := range paramTable {
		mexps = append(mexps, m)
	}
	slices.Sort(mexps)
	return mexps
}

// N32 is the size of the state in 32-bit lanes.
func (p Params) N32() int { return p.N * 4 }

// N64 is the size of the state in 64-bit units.
func (p Params) N64() int { return p.N * 2 }

// MinArraySize32 is the smallest destination for which FillArray32 writes the recursion directly.
func (p Params) MinArraySize32() int { return p.N32() }

// MinArraySize64 is the smallest destination for which FillArray64 writes the recursion directly.
func (p Params) MinArraySize64() int { return p.N64() }

// IDString returns the identification string of the parameter set, e.g.
//
//	SFMT-19937:122-18-1-11-1:dfffffef-ddfecb7f-bffaffff-bffffff6
func (p Params) IDString() string {
	return fmt.Sprintf("SFMT-%d:%d-%d-%d-%d-%d:%08x-%08x-%08x-%08x",
		p.MEXP, p.POS1, p.SL1, p.SL2, p.SR1, p.SR2,
		p.Mask[0], p.Mask[1], p.Mask[2], p.Mask[3])
}
