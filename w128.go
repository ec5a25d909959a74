package sfmt

// W128 is one 128-bit word of the generator state, stored as four 32-bit lanes.
// Lane 0 holds the least significant 32 bits.
type W128 [4]uint32

func (w W128) halves() (hi, lo uint64) {
	hi = uint64(w[3])<<32 | uint64(w[2])
	lo = uint64(w[1])<<32 | uint64(w[0])
	return
}

func fromHalves(hi, lo uint64) W128 {
	return W128{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

// lshift128 shifts w left by nbytes*8 bits as a single 128-bit integer.
func (w W128) lshift128(nbytes uint) W128 {
	hi, lo := w.halves()
	s := nbytes * 8
	return fromHalves(hi<<s|lo>>(64-s), lo<<s)
}

// rshift128 shifts w right by nbytes*8 bits as a single 128-bit integer.
func (w W128) rshift128(nbytes uint) W128 {
	hi, lo := w.halves()
	s := nbytes * 8
	return fromHalves(hi>>s, lo>>s|hi<<(64-s))
}

// IsZero reports whether all 128 bits are zero.
func (w W128) IsZero() bool {
	return w[0]|w[1]|w[2]|w[3] == 0
}

// Recursion computes one step of the SFMT recurrence
//
//	r = a ^ (a <<128 8*SL2) ^ ((b >> SR1) & MSK) ^ (c >>128 8*SR2) ^ (d << SL1)
//
// where the <<128 and >>128 terms shift across lane boundaries and the other
// shifts act on each 32-bit lane independently.
func Recursion(p *Params, a, b, c, d W128) W128 {
	x := a.lshift128(p.SL2)
	y := c.rshift128(p.SR2)
	var r W128
	for i := range 4 {
		r[i] = a[i] ^ x[i] ^ ((b[i] >> p.SR1) & p.Mask[i]) ^ y[i] ^ (d[i] << p.SL1)
	}
	return r
}
