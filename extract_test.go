package sfmt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMatchesUint64Stream(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 7, 8, 9, 13, 16, 4999, 10_000} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			s := New(1234)
			ref := New(1234)
			buf := make([]byte, n)
			got, err := s.Read(buf)
			require.NoError(t, err)
			require.Equal(t, n, got)

			want := make([]byte, 0, n+8)
			for len(want)+8 <= n {
				want = binary.LittleEndian.AppendUint64(want, ref.Uint64())
			}
			switch rest := n - len(want); {
			case rest > 4:
				want = binary.LittleEndian.AppendUint64(want, ref.Uint64())[:n]
			case rest > 0:
				want = binary.LittleEndian.AppendUint32(want, ref.Uint32())[:n]
			}
			assert.Equal(t, want, buf)
			assert.Equal(t, ref.Uint64(), s.Uint64(), "stream position after Read")
		})
	}
}

func TestReadIsReader(t *testing.T) {
	var r io.Reader = New(1)
	b, err := io.ReadAll(io.LimitReader(r, 1<<16))
	require.NoError(t, err)
	assert.Len(t, b, 1<<16)
}

func TestFillArray32MatchesUint32(t *testing.T) {
	for _, mexp := range SupportedMEXPs() {
		p := paramTable[mexp]
		sizes := []int{0, 1, 3, p.N32() - 4, p.N32(), p.N32() + 4, 2 * p.N32(), 3*p.N32() + 12, p.N32() + 2}
		for _, size := range sizes {
			t.Run(fmt.Sprintf("mexp=%d/size=%d", mexp, size), func(t *testing.T) {
				s := mustNewMEXP(t, mexp, 5489)
				ref := mustNewMEXP(t, mexp, 5489)
				dst := make([]uint32, size)
				s.FillArray32(dst)
				for i := range dst {
					if want := ref.Uint32(); dst[i] != want {
						t.Fatalf("value %d: got %d, want %d", i, dst[i], want)
					}
				}
				for i := range 3 * p.N32() {
					if want, got := ref.Uint32(), s.Uint32(); got != want {
						t.Fatalf("continuation %d: got %d, want %d", i, got, want)
					}
				}
			})
		}
	}
}

func TestFillArray64MatchesUint64(t *testing.T) {
	for _, mexp := range []int{607, 2281, 19937, 86243} {
		p := paramTable[mexp]
		sizes := []int{1, p.N64(), p.N64() + 2, p.N64() + 1, 5*p.N64() + 6}
		for _, size := range sizes {
			t.Run(fmt.Sprintf("mexp=%d/size=%d", mexp, size), func(t *testing.T) {
				s := mustNewMEXP(t, mexp, 4357)
				ref := mustNewMEXP(t, mexp, 4357)
				dst := make([]uint64, size)
				s.FillArray64(dst)
				for i := range dst {
					if want := ref.Uint64(); dst[i] != want {
						t.Fatalf("value %d: got %d, want %d", i, dst[i], want)
					}
				}
				for i := range 2 * p.N64() {
					if want, got := ref.Uint64(), s.Uint64(); got != want {
						t.Fatalf("continuation %d: got %d, want %d", i, got, want)
					}
				}
			})
		}
	}
}

func TestFillArrayAfterPartialBuffer(t *testing.T) {
	s := New(1234)
	ref := New(1234)
	for range 7 {
		s.Uint32()
		ref.Uint32()
	}
	dst := make([]uint64, 4096)
	s.FillArray64(dst)
	for i := range dst {
		require.Equal(t, ref.Uint64(), dst[i], "value %d", i)
	}
}

func TestFloat64Range(t *testing.T) {
	rng := New(0x12345678)
	for range 100_000 {
		x := rng.Float64()
		if x < 0.0 || x >= 1.0 || math.IsNaN(x) || math.IsInf(x, 0) {
			t.Errorf("Float64 out of range: %f", x)
		}
	}
}

func TestFloat64IsRes53(t *testing.T) {
	s := New(1234)
	ref := New(1234)
	for range 1000 {
		assert.Equal(t, float64(ref.Uint64()>>11)/(1<<53), s.Float64())
	}
}

func TestFloat64Distribution(t *testing.T) {
	rng := New(0x12345678)
	N := 1_000_000
	var sum float64
	for range N {
		sum += rng.Float64()
	}
	mean := sum / float64(N)
	if math.Abs(mean-0.5) > 0.01 {
		t.Errorf("Mean too far from 0.5: got %.5f", mean)
	}
}

func TestFloatVariantsRange(t *testing.T) {
	rng := New(99)
	for range 200_000 {
		f := rng.Float32()
		assert.True(t, f >= 0 && f < 1, "Float32 %v", f)
		r1 := rng.Real1()
		assert.True(t, r1 >= 0 && r1 <= 1, "Real1 %v", r1)
		r2 := rng.Real2()
		assert.True(t, r2 >= 0 && r2 < 1, "Real2 %v", r2)
		r3 := rng.Real3()
		assert.True(t, r3 > 0 && r3 < 1, "Real3 %v", r3)
	}
}

func TestRealBounds(t *testing.T) {
	// force the extreme lane values through the state buffer
	s := New(1)
	s.idx = 0
	s.state[0] = W128{0, 0xffffffff, 0, 0xffffffff}
	assert.Equal(t, 0.0, s.Real1())
	assert.Equal(t, 1.0, s.Real1())
	assert.Equal(t, 0.0, s.Real2())
	assert.Less(t, s.Real2(), 1.0)
	s.idx = 0
	assert.Greater(t, s.Real3(), 0.0)
	assert.Less(t, s.Real3(), 1.0)
}

// TestUint32N_Frequencies draws samples for several n values and checks the bucket counts with a
// chi-square statistic bounded by df + 5*sqrt(2*df).
func TestUint32N_Frequencies(t *testing.T) {
	cases := []uint32{2, 13, 64, 100, 1000}
	const samples = 5_000_000

	for _, n := range cases {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rng := New(0xCAFEBABE)
			counts := make([]uint32, n)
			for range samples {
				counts[rng.Uint32N(n)]++
			}
			expected := float64(samples) / float64(n)
			chi2 := 0.0
			for _, c := range counts {
				d := float64(c) - expected
				chi2 += d * d / expected
			}
			df := float64(n - 1)
			bound := df + 5*math.Sqrt(2*df)
			assert.Less(t, chi2, bound, "n=%d chi-square %.1f exceeds %.1f (df=%.0f)", n, chi2, bound, df)
		})
	}
}

func TestUintN_Degenerate(t *testing.T) {
	s := New(3)
	ref := s.Clone()
	assert.Equal(t, uint32(0), s.Uint32N(0))
	assert.Equal(t, uint32(0), s.Uint32N(1))
	assert.Equal(t, uint64(0), s.Uint64N(0))
	assert.Equal(t, uint64(0), s.Uint64N(1))
	assert.Equal(t, ref.Uint64(), s.Uint64(), "degenerate bounds must not consume values")
}

func TestUint64N_Range(t *testing.T) {
	s := New(11)
	for _, n := range []uint64{2, 3, 1000, 1<<63 + 1, math.MaxUint64} {
		for range 10_000 {
			assert.Less(t, s.Uint64N(n), n)
		}
	}
}
