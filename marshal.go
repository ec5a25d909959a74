package sfmt

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrInvalidState is returned by UnmarshalBinary for data that is not a valid state dump.
var ErrInvalidState = errors.New("sfmt: invalid state dump")

var stateMagic = [4]byte{'S', 'F', 'M', 'T'}

const stateHeaderSize = 12 // magic, MEXP, index

// MarshalBinary dumps the complete generator state: the magic "SFMT", the Mersenne exponent and the
// buffer index as little-endian uint32, followed by the 4*N state lanes as little-endian uint32.
// A generator restored from the dump with UnmarshalBinary continues with exactly the same sequence.
func (s *SFMT) MarshalBinary() ([]byte, error) {
	s.lazySeed()
	n32 := s.params.N32()
	buf := make([]byte, stateHeaderSize+4*n32)
	copy(buf, stateMagic[:])
	binary.LittleEndian.PutUint32(buf[4:], uint32(s.params.MEXP))
	binary.LittleEndian.PutUint32(buf[8:], uint32(s.idx))
	out := buf[stateHeaderSize:]
	for i := range n32 {
		binary.LittleEndian.PutUint32(out[4*i:], s.lane(i))
	}
	return buf, nil
}

// UnmarshalBinary restores a state written by MarshalBinary. The parameter set is taken from the dump,
// so the receiver may have been created with a different Mersenne exponent or be the zero value.
// On error the receiver is left unchanged.
func (s *SFMT) UnmarshalBinary(data []byte) error {
	if len(data) < stateHeaderSize || !bytes.Equal(data[:4], stateMagic[:]) {
		return errors.Wrap(ErrInvalidState, "missing SFMT header")
	}
	mexp := int(binary.LittleEndian.Uint32(data[4:]))
	p, err := ParamsFor(mexp)
	if err != nil {
		return errors.Wrap(err, "restoring state")
	}
	n32 := p.N32()
	if want := stateHeaderSize + 4*n32; len(data) != want {
		return errors.Wrapf(ErrInvalidState, "SFMT-%d dump has %d bytes, want %d", mexp, len(data), want)
	}
	idx := binary.LittleEndian.Uint32(data[8:])
	if idx > uint32(n32) {
		return errors.Wrapf(ErrInvalidState, "index %d out of range [0,%d]", idx, n32)
	}
	lanes := data[stateHeaderSize:]
	state := make([]W128, p.N)
	allZero := true
	for i := range state {
		for l := range 4 {
			state[i][l] = binary.LittleEndian.Uint32(lanes[16*i+4*l:])
		}
		allZero = allZero && state[i].IsZero()
	}
	if allZero {
		return errors.Wrap(ErrInvalidState, "all-zero state")
	}
	s.params = p
	s.state = state
	s.idx = int(idx)
	return nil
}
